package numeric

import (
	"strings"
	"unicode"

	"github.com/dshills/fieldmask/internal/visual"
)

// Transformer formats raw digits with thousands grouping and a fixed
// number of decimal digits. A Transformer is immutable and safe for
// concurrent use.
type Transformer struct {
	cfg Config
}

// New creates a numeric transformer. Options are applied on top of
// DefaultConfig.
func New(opts ...Option) (*Transformer, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Transformer{cfg: cfg}, nil
}

// Validate reports the first parameter the transformer cannot honor.
func (c Config) Validate() error {
	if c.DecimalDigits < 0 {
		return visual.NewConfigError("decimalDigits", "must not be negative")
	}
	if c.GroupSize <= 0 {
		return visual.NewConfigError("groupSize", "must be positive")
	}
	if unicode.IsDigit(c.ThousandsSeparator) {
		return visual.NewConfigError("thousandsSeparator", "must not be a digit")
	}
	if unicode.IsDigit(c.DecimalSeparator) {
		return visual.NewConfigError("decimalSeparator", "must not be a digit")
	}
	return nil
}

// Config returns the transformer's configuration.
func (t *Transformer) Config() Config {
	return t.cfg
}

// Transform formats raw as an amount.
func (t *Transformer) Transform(raw string) visual.TransformedText {
	if raw == "" && !t.cfg.ShowZeroValue {
		return visual.Unchanged(raw)
	}

	src := []rune(raw)
	intPart, fraction := t.split(src)

	var b strings.Builder
	b.Grow(len(raw) + len(intPart)/t.cfg.GroupSize + t.cfg.DecimalDigits + 8)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%t.cfg.GroupSize == 0 {
			b.WriteRune(t.cfg.ThousandsSeparator)
		}
		b.WriteRune(r)
	}
	b.WriteRune(t.cfg.DecimalSeparator)
	for _, r := range fraction {
		b.WriteRune(r)
	}

	formatted := b.String()
	return visual.TransformedText{
		Text: formatted,
		Mapping: Mapping{
			formatted: []rune(formatted),
			rawLen:    len(src),
			short:     len(src) <= t.cfg.DecimalDigits,
		},
	}
}

// split divides raw into integer and fraction digits. Input shorter than
// the fraction is zero padded on the left and the integer becomes "0".
func (t *Transformer) split(src []rune) (intPart, fraction []rune) {
	digits := t.cfg.DecimalDigits

	if len(src) < digits {
		fraction = make([]rune, 0, digits)
		for range digits - len(src) {
			fraction = append(fraction, '0')
		}
		fraction = append(fraction, src...)
		return []rune{'0'}, fraction
	}

	intPart = src[:len(src)-digits]
	fraction = src[len(src)-digits:]
	if len(intPart) == 0 {
		intPart = []rune{'0'}
	}
	return intPart, fraction
}

// Mapping converts offsets for one numeric Transform result.
type Mapping struct {
	formatted []rune
	rawLen    int
	// short is set while every raw digit sits in the fraction.
	short bool
}

// ToFormatted maps a raw offset into the formatted text.
func (m Mapping) ToFormatted(offset int) int {
	offset = visual.Clamp(offset, m.rawLen)
	if m.short {
		return len(m.formatted) - (m.rawLen - offset)
	}
	return visual.Clamp(offset+m.separatorsBefore(offset), len(m.formatted))
}

// ToRaw maps a formatted offset back to a raw offset.
func (m Mapping) ToRaw(offset int) int {
	offset = visual.Clamp(offset, len(m.formatted))
	if m.short {
		return max(m.rawLen-(len(m.formatted)-offset), 0)
	}
	separators := 0
	for _, r := range m.formatted[:offset] {
		if !unicode.IsDigit(r) {
			separators++
		}
	}
	return offset - separators
}

// separatorsBefore counts non-digit runes passed while scanning to the
// digit with index digit.
func (m Mapping) separatorsBefore(digit int) int {
	separators := 0
	seen := 0
	for _, r := range m.formatted {
		if !unicode.IsDigit(r) {
			separators++
			continue
		}
		seen++
		if seen > digit {
			break
		}
	}
	return separators
}
