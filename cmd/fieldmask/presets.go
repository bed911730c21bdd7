package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dshills/fieldmask/internal/config"
)

// presetInfo is the listing form of a preset.
type presetInfo struct {
	Name    string `json:"name" yaml:"name"`
	Kind    string `json:"kind" yaml:"kind"`
	Format  string `json:"format" yaml:"format"`
	Label   string `json:"label,omitempty" yaml:"label,omitempty"`
	Example string `json:"example" yaml:"example"`
}

func newPresetsCmd(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "presets",
		Aliases: []string{"ls"},
		Short:   "List the available field presets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := describePresets(root.cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch output {
			case "table":
				return writePresetTable(out, infos, root.useColor(out))
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(infos); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unsupported output %q (must be table, json or yaml)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table|json|yaml)")
	return cmd
}

func describePresets(cfg *config.Config) ([]presetInfo, error) {
	names := cfg.Names()
	infos := make([]presetInfo, 0, len(names))

	for _, name := range names {
		f, err := cfg.Field(name)
		if err != nil {
			return nil, err
		}
		t, err := f.Transformer()
		if err != nil {
			return nil, err
		}

		info := presetInfo{
			Name:    name,
			Kind:    string(f.Kind),
			Label:   f.Label,
			Example: t.Transform(sampleValue(f)).Text,
		}
		if f.Kind == config.KindNumeric {
			nc, err := f.NumericConfig()
			if err != nil {
				return nil, err
			}
			info.Format = fmt.Sprintf("%d decimals, groups of %d, %q %q",
				nc.DecimalDigits, nc.GroupSize, nc.ThousandsSeparator, nc.DecimalSeparator)
		} else {
			info.Format = f.Mask
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// sampleValue returns raw input long enough to fill the preset.
func sampleValue(f config.Field) string {
	const digits = "1234567890"
	const letters = "abcdefghij"

	src := digits
	if f.Accept == "letters" {
		src = letters
	}

	n := 7
	if f.Kind == config.KindMask {
		n = max(f.InputLimit(), 1)
	}
	return strings.Repeat(src, n/len(src)+1)[:n]
}

func writePresetTable(w io.Writer, infos []presetInfo, colored bool) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"NAME", "KIND", "FORMAT", "LABEL", "EXAMPLE"})
	for _, info := range infos {
		t.AppendRow(table.Row{info.Name, info.Kind, info.Format, info.Label, info.Example})
	}

	style := table.StyleLight
	style.Options.DrawBorder = false
	if colored {
		style.Color.Header = text.Colors{text.Bold}
	}
	t.SetStyle(style)
	t.Render()
	return nil
}
