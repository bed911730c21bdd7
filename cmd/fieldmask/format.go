package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/fieldmask/internal/config"
	"github.com/dshills/fieldmask/internal/visual"
	"github.com/dshills/fieldmask/internal/visual/mask"
)

var errNoFormat = errors.New("one of --preset, --mask or --numeric is required")

type formatOptions struct {
	preset string

	mask string
	slot string

	numeric       bool
	decimalDigits int
	groupSize     int
	thousands     string
	decimal       string
	showZero      bool
	locale        string

	showMap bool
}

func newFormatCmd(root *rootOptions) *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format [flags] [value...]",
		Short: "Format raw values with a preset, a mask or a numeric format",
		Long: `Format each raw value and print the displayed text, one per line.
Values are read from standard input when none are given.`,
		Example: strings.TrimSpace(`
fieldmask format --preset date 12252024
fieldmask format --mask "(###) ###-####" 5551234567
fieldmask format --numeric --locale de-DE 123456789
fieldmask format --preset card --map 4111111111111111
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, root, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.preset, "preset", "p", "", "named preset")
	f.StringVarP(&opts.mask, "mask", "m", "", `mask pattern, e.g. "##/##/####"`)
	f.StringVar(&opts.slot, "slot", string(mask.DefaultSlotSignal), "mask slot character")
	f.BoolVarP(&opts.numeric, "numeric", "n", false, "format as a fixed-point number")
	f.IntVar(&opts.decimalDigits, "decimal-digits", 2, "digits after the decimal separator")
	f.IntVar(&opts.groupSize, "group-size", 3, "integer digits per group")
	f.StringVar(&opts.thousands, "thousands", "", "grouping separator (default from --locale, else ',')")
	f.StringVar(&opts.decimal, "decimal", "", "decimal separator (default from --locale, else '.')")
	f.BoolVar(&opts.showZero, "show-zero", false, "show a zero value for empty input")
	f.StringVar(&opts.locale, "locale", "", "BCP 47 locale supplying default separators, e.g. de-DE")
	f.BoolVar(&opts.showMap, "map", false, "print the offset mapping of each value")
	cmd.MarkFlagsMutuallyExclusive("preset", "mask", "numeric")

	return cmd
}

func runFormat(cmd *cobra.Command, root *rootOptions, opts *formatOptions, args []string) error {
	fieldCfg, err := opts.field(root.cfg)
	if err != nil {
		return err
	}
	t, err := fieldCfg.Transformer()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colored := root.useColor(out)
	root.log.Debug("formatting", zap.String("field", fieldCfg.Name), zap.String("kind", string(fieldCfg.Kind)))

	return eachValue(cmd.InOrStdin(), args, func(raw string) error {
		tt := t.Transform(raw)
		if opts.showMap {
			return writeMap(out, raw, tt, colored)
		}
		_, err := fmt.Fprintln(out, tt.Text)
		return err
	})
}

// field resolves the flags into a preset.
func (o *formatOptions) field(cfg *config.Config) (config.Field, error) {
	switch {
	case o.preset != "":
		return cfg.Field(o.preset)

	case o.mask != "":
		slot, err := parseRune("slot", o.slot)
		if err != nil {
			return config.Field{}, err
		}
		return config.Field{
			Name:       "mask",
			Kind:       config.KindMask,
			Mask:       o.mask,
			SlotSignal: slot,
		}, nil

	case o.numeric:
		thousands, err := parseRune("thousands", o.thousands)
		if err != nil {
			return config.Field{}, err
		}
		decimal, err := parseRune("decimal", o.decimal)
		if err != nil {
			return config.Field{}, err
		}
		return config.Field{
			Name:               "numeric",
			Kind:               config.KindNumeric,
			DecimalDigits:      o.decimalDigits,
			GroupSize:          o.groupSize,
			ThousandsSeparator: thousands,
			DecimalSeparator:   decimal,
			ShowZeroValue:      o.showZero,
			Locale:             o.locale,
		}, nil

	default:
		return config.Field{}, errNoFormat
	}
}

// parseRune reads a flag that must hold at most one character.
func parseRune(flag, s string) (rune, error) {
	switch utf8.RuneCountInString(s) {
	case 0:
		return 0, nil
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	default:
		return 0, fmt.Errorf("--%s must be a single character, got %q", flag, s)
	}
}

// eachValue calls fn for every argument, or for every line of in when
// there are no arguments.
func eachValue(in io.Reader, args []string, fn func(string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := fn(arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := fn(strings.TrimRight(scanner.Text(), "\r")); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// writeMap prints a value, its formatted text and the offset table that
// links them.
func writeMap(w io.Writer, raw string, tt visual.TransformedText, colored bool) error {
	rawColor := color.New(color.FgCyan)
	fmtColor := color.New(color.FgGreen, color.Bold)
	if colored {
		rawColor.EnableColor()
		fmtColor.EnableColor()
	} else {
		rawColor.DisableColor()
		fmtColor.DisableColor()
	}

	if _, err := fmt.Fprintf(w, "%s -> %s\n", rawColor.Sprintf("%q", raw), fmtColor.Sprintf("%q", tt.Text)); err != nil {
		return err
	}

	formatted := []rune(tt.Text)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"RAW", "FORMATTED", "BACK", "NEXT"})
	for i := 0; i <= visual.RuneCount(raw); i++ {
		f := tt.Mapping.ToFormatted(i)
		next := ""
		if f < len(formatted) {
			next = strconv.QuoteRune(formatted[f])
		}
		t.AppendRow(table.Row{i, f, tt.Mapping.ToRaw(f), next})
	}

	style := table.StyleLight
	style.Options.DrawBorder = false
	if colored {
		style.Color.Header = text.Colors{text.Bold, text.FgCyan}
	}
	t.SetStyle(style)
	t.Render()

	_, err := fmt.Fprintln(w)
	return err
}
