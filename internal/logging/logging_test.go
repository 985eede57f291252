package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	Setup(&buf, false)

	log.Debug().Msg("hidden")
	log.Info().Str("variant", "basic").Msg("started")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "started")
	assert.Contains(t, out, "variant=basic")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetup_Debug(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	Setup(&buf, true)

	log.Debug().Msg("key pressed")
	assert.Contains(t, buf.String(), "key pressed")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestModule(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	Setup(&buf, false)

	logger := Module("ui")
	logger.Info().Msg("ready")

	assert.Contains(t, buf.String(), "module=ui")
}
