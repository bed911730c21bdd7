package config

import (
	"fmt"
	"strings"

	"github.com/dshills/fieldmask/internal/field"
	"github.com/dshills/fieldmask/internal/visual"
	"github.com/dshills/fieldmask/internal/visual/locale"
	"github.com/dshills/fieldmask/internal/visual/mask"
	"github.com/dshills/fieldmask/internal/visual/numeric"
)

// Kind selects the transformer a preset builds.
type Kind string

// Preset kinds.
const (
	KindMask    Kind = "mask"
	KindNumeric Kind = "numeric"
)

// Field is one named preset.
type Field struct {
	Name        string
	Kind        Kind
	Label       string
	Placeholder string

	// Mask settings.
	Mask       string
	SlotSignal rune // zero means mask.DefaultSlotSignal

	// Numeric settings. Zero separators are filled from Locale, then
	// from the numeric defaults.
	DecimalDigits      int
	GroupSize          int
	ThousandsSeparator rune
	DecimalSeparator   rune
	ShowZeroValue      bool
	Locale             string

	// Session settings.
	MaxLength int    // zero means the mask's slot count, or unlimited
	Accept    string // "any", "digits", "letters" or "alnum"
}

// Validate checks that the preset builds a transformer and names a known
// accept filter.
func (f Field) Validate() error {
	if _, err := f.Transformer(); err != nil {
		return err
	}
	if _, ok := field.AcceptFunc(f.Accept); !ok {
		return f.wrap(fmt.Errorf("%w: %q", ErrUnknownAccept, f.Accept))
	}
	if f.MaxLength < 0 {
		return f.wrap(visual.NewConfigError("maxLength", "must not be negative"))
	}
	return nil
}

// Transformer builds the preset's visual transformer.
func (f Field) Transformer() (visual.Transformer, error) {
	switch f.Kind {
	case KindMask:
		t, err := mask.New(f.Mask, mask.WithSlotSignal(f.slotSignal()))
		if err != nil {
			return nil, f.wrap(err)
		}
		return t, nil

	case KindNumeric:
		cfg, err := f.NumericConfig()
		if err != nil {
			return nil, f.wrap(err)
		}
		t, err := numeric.New(numeric.WithConfig(cfg))
		if err != nil {
			return nil, f.wrap(err)
		}
		return t, nil

	default:
		return nil, f.wrap(fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind))
	}
}

// NumericConfig resolves the numeric settings, filling unset separators
// from the preset's locale.
func (f Field) NumericConfig() (numeric.Config, error) {
	cfg := numeric.DefaultConfig()
	cfg.DecimalDigits = f.DecimalDigits
	cfg.GroupSize = f.GroupSize
	cfg.ShowZeroValue = f.ShowZeroValue

	thousands, decimal := f.ThousandsSeparator, f.DecimalSeparator
	if f.Locale != "" && (thousands == 0 || decimal == 0) {
		tag, err := locale.Parse(f.Locale)
		if err != nil {
			return cfg, err
		}
		lt, ld := locale.Separators(tag)
		if thousands == 0 {
			thousands = lt
		}
		if decimal == 0 {
			decimal = ld
		}
	}
	if thousands != 0 {
		cfg.ThousandsSeparator = thousands
	}
	if decimal != 0 {
		cfg.DecimalSeparator = decimal
	}

	return cfg, cfg.Validate()
}

// SessionOptions returns the editing options the preset implies.
func (f Field) SessionOptions() ([]field.Option, error) {
	accept, ok := field.AcceptFunc(f.Accept)
	if !ok {
		return nil, f.wrap(fmt.Errorf("%w: %q", ErrUnknownAccept, f.Accept))
	}

	opts := []field.Option{field.WithAccept(accept)}
	if n := f.InputLimit(); n > 0 {
		opts = append(opts, field.WithMaxLength(n))
	}
	return opts, nil
}

// NewSession starts an editing session for the preset holding value.
func (f Field) NewSession(value string) (*field.Session, error) {
	t, err := f.Transformer()
	if err != nil {
		return nil, err
	}
	opts, err := f.SessionOptions()
	if err != nil {
		return nil, err
	}
	if value != "" {
		opts = append(opts, field.WithValue(value))
	}
	return field.NewSession(t, opts...), nil
}

// InputLimit is the raw length a session accepts. Zero means unlimited.
// A mask preset without MaxLength is limited to its slot count, since raw
// input past the last slot is never shown.
func (f Field) InputLimit() int {
	if f.MaxLength > 0 || f.Kind != KindMask {
		return f.MaxLength
	}
	return strings.Count(f.Mask, string(f.slotSignal()))
}

func (f Field) slotSignal() rune {
	if f.SlotSignal == 0 {
		return mask.DefaultSlotSignal
	}
	return f.SlotSignal
}

func (f Field) wrap(err error) error {
	return &SettingError{Path: "fields." + f.Name, Err: err}
}
