package visual

import (
	"fmt"
	"unicode/utf8"
)

// OffsetMapping converts cursor positions between raw and formatted text.
type OffsetMapping interface {
	// ToFormatted maps a raw offset to the corresponding formatted offset.
	ToFormatted(offset int) int

	// ToRaw maps a formatted offset back to a raw offset.
	ToRaw(offset int) int
}

// TransformedText is the result of a single Transform call.
type TransformedText struct {
	// Text is the formatted text to display.
	Text string

	// Mapping converts offsets between the raw input and Text.
	Mapping OffsetMapping
}

// Len returns the length of Text in runes.
func (t TransformedText) Len() int {
	return RuneCount(t.Text)
}

// Transformer produces formatted text from raw input.
// Implementations are immutable and safe for concurrent use.
type Transformer interface {
	Transform(raw string) TransformedText
}

// identityMapping maps every offset to itself.
type identityMapping struct{}

func (identityMapping) ToFormatted(offset int) int { return max(offset, 0) }
func (identityMapping) ToRaw(offset int) int       { return max(offset, 0) }

// Identity is the mapping for text that was passed through unchanged.
var Identity OffsetMapping = identityMapping{}

// Unchanged returns raw as-is with the identity mapping.
func Unchanged(raw string) TransformedText {
	return TransformedText{Text: raw, Mapping: Identity}
}

// Clamp restricts offset to [0, length].
func Clamp(offset, length int) int {
	if offset < 0 {
		return 0
	}
	if offset > length {
		return length
	}
	return offset
}

// CheckOffset returns an error wrapping ErrInvalidOffset if offset is
// outside [0, length].
func CheckOffset(offset, length int) error {
	if offset < 0 || offset > length {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidOffset, offset, length)
	}
	return nil
}

// RuneCount returns the number of runes in s.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}
