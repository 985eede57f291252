package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/fang"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ytget/glass-calculator/internal/config"
	"github.com/ytget/glass-calculator/internal/logging"
	"github.com/ytget/glass-calculator/internal/model"
	"github.com/ytget/glass-calculator/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var (
	version = "dev"
	commit  = "none"
)

const (
	AppID   = "com.ytget.glass-calculator"
	AppName = "Glass Calculator"
)

// Options holds the flags shared by every command
type Options struct {
	Debug      bool
	ConfigPath string
	Variant    string

	fs afero.Fs
}

func main() {
	rootCmd := newRootCmd(afero.NewOsFs())

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(version),
		fang.WithCommit(commit),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree; fs is where the config file is read from
func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &Options{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "calculator [flags]",
		Short: "Basic and scientific desktop calculator",
		Long: `Glass Calculator opens a desktop window with a basic or scientific keypad.
The eval subcommand runs the same engine headlessly on a key sequence.`,
		Example: `  # Open the scientific keypad
  calculator --variant scientific

  # Evaluate without a window
  calculator eval "5 + 3 ="`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultFilePath(), "Path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&opts.Variant, "variant", "", "Keypad variant: basic or scientific")

	rootCmd.AddCommand(evalCmd(opts))

	return rootCmd
}

// parseVariantFlag validates --variant; an empty value means "not set"
func parseVariantFlag(s string) (model.Variant, bool, error) {
	if s == "" {
		return "", false, nil
	}
	v, ok := model.ParseVariant(s)
	if !ok {
		return "", false, errors.Wrapf(config.ErrInvalidVariant, "--variant %q", s)
	}
	return v, true, nil
}

// runGUI opens the calculator window and blocks until it is closed
func runGUI(opts *Options) error {
	logging.Setup(os.Stderr, opts.Debug)
	log := logging.Module("main")

	variant, variantSet, err := parseVariantFlag(opts.Variant)
	if err != nil {
		return err
	}

	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewGlassTheme())

	settings := config.NewSettings(a)
	file, err := config.LoadFile(opts.fs, opts.ConfigPath)
	fileLoaded := err == nil
	if err != nil {
		log.Warn().Err(err).Msg("config file ignored")
	} else {
		settings.Apply(file)
	}
	if !variantSet {
		variant = settings.GetVariant()
	}

	log.Info().
		Str("version", version).
		Str("variant", variant.String()).
		Str("config", opts.ConfigPath).
		Msg("starting")

	w := a.NewWindow(AppName)
	if icon, err := ui.LoadAppIcon(); err == nil {
		w.SetIcon(icon)
	} else {
		log.Debug().Err(err).Msg("app icon not loaded")
	}

	root := ui.NewRootUI(w, a, variant)
	// A broken file is left alone for the user to fix
	if fileLoaded {
		root.SetConfigFile(opts.fs, opts.ConfigPath)
	}
	w.ShowAndRun()
	return nil
}
