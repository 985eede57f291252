// Package logging configures the zerolog global logger used by the GUI and
// the command line.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs a console writer on w and sets the global level
func Setup(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	return log.Logger
}

// Module returns a sub-logger for one package, tagged with module=name
func Module(name string) zerolog.Logger {
	return log.With().Str("module", name).Logger()
}
