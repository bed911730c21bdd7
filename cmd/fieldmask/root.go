package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dshills/fieldmask/internal/config"
	"github.com/dshills/fieldmask/internal/logging"
	"github.com/dshills/fieldmask/internal/ui/backend"
)

// rootOptions holds persistent flags and the state every subcommand
// shares once the root command has loaded configuration.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	color      string

	// newBackend opens the terminal for the edit command.
	newBackend func() (backend.Backend, error)

	cfg *config.Config
	log *logging.Logger
}

func newTerminal() (backend.Backend, error) {
	return backend.NewTerminal()
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&rootOptions{newBackend: newTerminal})
}

func newRootCmdWith(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fieldmask",
		Short: "Format and edit masked and numeric input fields",
		Long: `fieldmask shows raw input through a display format, such as a
date mask or a grouped decimal amount, and keeps the cursor where the
user expects it while they edit.

Presets come from built-in definitions, an optional TOML or YAML file
given with --config, and FIELDMASK_ environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "preset file (.toml, .yaml or .yml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error), overrides the config file")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format (console|json), overrides the config file")
	flags.StringVar(&opts.color, "color", "auto", "colorize output (auto|always|never)")

	cmd.AddCommand(
		newFormatCmd(opts),
		newPresetsCmd(opts),
		newEditCmd(opts),
		newVersionCmd(opts),
	)

	return cmd
}

// setup loads presets and builds the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if err := validateColorMode(o.color); err != nil {
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	lc := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if o.logLevel != "" {
		lc.Level = o.logLevel
	}
	if o.logFormat != "" {
		lc.Format = o.logFormat
	}
	if lc.Output == "stderr" {
		lc.Writer = cmd.ErrOrStderr()
	}

	log, err := logging.New(lc)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.log = log
	log.Debug("configuration loaded",
		zap.String("path", cfg.Path),
		zap.Strings("presets", cfg.Names()),
	)
	return nil
}

// logsToTerminal reports whether log output would land on the screen
// the editor draws to.
func (o *rootOptions) logsToTerminal() bool {
	out := o.cfg.Logging.Output
	return out == "stderr" || out == "stdout"
}

func validateColorMode(mode string) error {
	switch mode {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("invalid --color %q (must be auto, always or never)", mode)
	}
}

// useColor decides whether to colorize output written to w.
func (o *rootOptions) useColor(w io.Writer) bool {
	switch o.color {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
