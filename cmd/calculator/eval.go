package main

import (
	"encoding/json"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ytget/glass-calculator/internal/config"
	"github.com/ytget/glass-calculator/internal/engine"
	"github.com/ytget/glass-calculator/internal/keypad"
	"github.com/ytget/glass-calculator/internal/logging"
	"github.com/ytget/glass-calculator/internal/model"
)

var (
	expressionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	memoryStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// evalOptions are the flags of the eval command
type evalOptions struct {
	Angle     string
	Precision int
	JSON      bool
}

func evalCmd(root *Options) *cobra.Command {
	var opts evalOptions

	cmd := &cobra.Command{
		Use:   "eval [flags] keys...",
		Short: "Press a key sequence and print the display",
		Long: `Eval presses the given keys on a fresh calculator and prints the final display.
Keys are separated by spaces; numbers may be written whole ("12.5").
Button labels (×, ÷, √, x², n!) and ASCII aliases (*, /, sqrt, sq, fact) are accepted.`,
		Example: `  calculator eval "5 + 3 ="
  calculator eval --variant scientific "90 sin"
  calculator eval --variant sci --angle rad --json "1 sin"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(cmd.ErrOrStderr(), root.Debug)
			return runEval(cmd, root, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.Angle, "angle", "", "Angle mode for trigonometry: deg or rad")
	cmd.Flags().IntVar(&opts.Precision, "precision", engine.DefaultPrecision, "Significant digits in results (0 = shortest exact)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the engine state as JSON")

	return cmd
}

// evalSettings resolves built-in defaults, then the config file, then flags
type evalSettings struct {
	variant   model.Variant
	angle     model.AngleMode
	precision int
}

func resolveEvalSettings(cmd *cobra.Command, root *Options, opts evalOptions) (evalSettings, error) {
	s := evalSettings{
		variant:   config.DefaultVariant,
		angle:     config.DefaultAngleMode,
		precision: config.DefaultPrecision,
	}

	file, err := config.LoadFile(root.fs, root.ConfigPath)
	if err != nil {
		return s, err
	}
	if file.Variant != "" {
		s.variant = model.Variant(file.Variant)
	}
	if file.AngleMode != "" {
		s.angle = model.AngleMode(file.AngleMode)
	}
	if file.Precision != nil {
		s.precision = *file.Precision
	}

	if v, ok, err := parseVariantFlag(root.Variant); err != nil {
		return s, err
	} else if ok {
		s.variant = v
	}
	if opts.Angle != "" {
		mode, ok := model.ParseAngleMode(opts.Angle)
		if !ok {
			return s, errors.Wrapf(config.ErrInvalidAngleMode, "--angle %q", opts.Angle)
		}
		s.angle = mode
	}
	if cmd.Flags().Changed("precision") {
		if opts.Precision < 0 || opts.Precision > engine.MaxPrecision {
			return s, errors.Wrapf(config.ErrInvalidPrecision, "--precision %d not in 0..%d", opts.Precision, engine.MaxPrecision)
		}
		s.precision = opts.Precision
	}
	return s, nil
}

func runEval(cmd *cobra.Command, root *Options, opts evalOptions, input string) error {
	log := logging.Module("eval")

	s, err := resolveEvalSettings(cmd, root, opts)
	if err != nil {
		return err
	}

	keys, err := keypad.ParseSequence(input)
	if err != nil {
		return err
	}

	calc := engine.NewVariant(s.variant, engine.WithPrecision(s.precision))
	if sci, ok := calc.(*engine.Scientific); ok {
		sci.SetAngleMode(s.angle)
	}

	if err := keypad.Run(calc, keys); err != nil {
		return err
	}

	snap := calc.Snapshot()
	log.Debug().
		Str("variant", s.variant.String()).
		Int("keys", len(keys)).
		Str("display", snap.Display).
		Msg("evaluated")

	if opts.JSON {
		return writeJSON(cmd.OutOrStdout(), snap)
	}
	return writeDisplay(cmd.OutOrStdout(), snap)
}

func writeJSON(w io.Writer, snap engine.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(snap), "encode snapshot")
}

// writeDisplay prints the pending expression, the memory marker and the
// display value, one per line.
func writeDisplay(w io.Writer, snap engine.Snapshot) error {
	if snap.Expression != "" {
		if _, err := lipgloss.Fprintln(w, expressionStyle.Render(snap.Expression)); err != nil {
			return err
		}
	}
	if snap.Memory != "" && snap.Memory != engine.InitialDisplay {
		if _, err := lipgloss.Fprintln(w, memoryStyle.Render("M "+snap.Memory)); err != nil {
			return err
		}
	}
	_, err := lipgloss.Fprintln(w, resultStyle.Render(snap.Display))
	return err
}
