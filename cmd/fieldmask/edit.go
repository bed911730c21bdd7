package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/fieldmask/internal/config"
	"github.com/dshills/fieldmask/internal/config/watcher"
	"github.com/dshills/fieldmask/internal/logging"
	"github.com/dshills/fieldmask/internal/ui"
)

var errCanceled = errors.New("edit canceled")

type editOptions struct {
	preset string
	value  string
	raw    bool
	watch  bool
}

func newEditCmd(root *rootOptions) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit --preset NAME",
		Short: "Edit a value interactively in the terminal",
		Long: `Edit a value in a single-line terminal field. Enter accepts and
prints the formatted value; Escape or Ctrl-C cancels.

When presets come from a file, saving the file re-applies the preset to
the value being edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd.Context(), cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.preset, "preset", "p", "", "named preset (required)")
	f.StringVar(&opts.value, "value", "", "initial raw value")
	f.BoolVar(&opts.raw, "raw", false, "print the raw value instead of the formatted one")
	f.BoolVar(&opts.watch, "watch", true, "reload the preset when the config file changes")
	_ = cmd.MarkFlagRequired("preset")

	return cmd
}

func runEdit(ctx context.Context, cmd *cobra.Command, root *rootOptions, opts *editOptions) error {
	preset, err := root.cfg.Field(opts.preset)
	if err != nil {
		return err
	}
	session, err := preset.NewSession(opts.value)
	if err != nil {
		return err
	}

	log := root.log
	if root.logsToTerminal() {
		log = logging.Nop()
	}

	view := ui.NewFieldView(session,
		ui.WithLabel(preset.Label),
		ui.WithPlaceholder(preset.Placeholder),
		ui.WithStatus(true),
	)

	term, err := root.newBackend()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}

	if opts.watch && root.cfg.Path != "" {
		w, err := watcher.New(root.cfg.Path,
			watcher.WithDebounce(root.cfg.Watch.Debounce),
			watcher.WithLogger(log.Named("watcher")),
		)
		if err != nil {
			return err
		}
		defer w.Close()

		w.OnChange(func(ev watcher.Event) {
			reloadPreset(ev, opts.preset, log, func(fn ui.Update) { ui.Post(term, fn) })
		})
		if err := w.Start(ctx); err != nil {
			return err
		}
	}

	res, err := ui.Run(ctx, term, view)
	if err != nil {
		return err
	}
	if !res.Submitted {
		return errCanceled
	}

	out := res.Formatted
	if opts.raw {
		out = res.Value
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// reloadPreset re-reads the config file and hands the editor an update
// that swaps in the new preset while keeping the raw value. A broken
// file is logged and the current preset stays in effect.
func reloadPreset(ev watcher.Event, name string, log *logging.Logger, post func(ui.Update)) {
	log.Info("config changed", zap.String("path", ev.Path), zap.Stringer("op", ev.Op))

	cfg, err := config.Load(ev.Path)
	if err != nil {
		log.Warn("reload failed", zap.Error(err))
		return
	}
	preset, err := cfg.Field(name)
	if err != nil {
		log.Warn("preset removed", zap.String("preset", name), zap.Error(err))
		return
	}
	if err := log.SetLevel(cfg.Logging.Level); err != nil {
		log.Warn("invalid log level", zap.Error(err))
	}

	post(func(v *ui.FieldView) {
		session, err := preset.NewSession(v.Session().Value())
		if err != nil {
			log.Warn("reload failed", zap.Error(err))
			return
		}
		v.SetSession(session)
		v.SetLabel(preset.Label)
		v.SetPlaceholder(preset.Placeholder)
		log.Debug("preset reloaded", zap.String("preset", name))
	})
}
