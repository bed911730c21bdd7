// Package locale derives default numeric separators from CLDR locale data.
//
// The numeric transformer only accepts separator runes. This package is
// how the command line fills them in when a preset names a locale instead
// of explicit separators.
package locale

import (
	"fmt"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Fallback separators, used when a locale's format cannot be read.
const (
	FallbackThousands = ','
	FallbackDecimal   = '.'
)

// probe has enough integer digits to force grouping in every locale
// that groups at all.
const probe = 1234567.5

// Parse parses a BCP 47 tag such as "de-DE" or "fr".
func Parse(name string) (language.Tag, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("parsing locale %q: %w", name, err)
	}
	return tag, nil
}

// Separators returns the grouping and decimal separators used by tag.
// Locales that do not group digits report the fallback grouping rune.
func Separators(tag language.Tag) (thousands, decimal rune) {
	p := message.NewPrinter(tag)
	formatted := p.Sprint(number.Decimal(probe, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	return scan(formatted)
}

// scan reads separators out of a formatted probe value. The last
// non-digit is the decimal separator; any earlier one is the grouping
// separator. Format characters such as bidi marks are skipped.
func scan(formatted string) (thousands, decimal rune) {
	var seps []rune
	for _, r := range formatted {
		if !unicode.IsDigit(r) && !unicode.Is(unicode.Cf, r) {
			seps = append(seps, r)
		}
	}

	switch len(seps) {
	case 0:
		return FallbackThousands, FallbackDecimal
	case 1:
		if seps[0] == FallbackThousands {
			return FallbackDecimal, seps[0]
		}
		return FallbackThousands, seps[0]
	default:
		return seps[0], seps[len(seps)-1]
	}
}
