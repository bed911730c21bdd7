package mask

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dshills/fieldmask/internal/visual"
)

// Transformer applies a literal pattern to raw input.
// A Transformer is immutable and safe for concurrent use.
type Transformer struct {
	pattern []rune
	signal  rune
	slots   int
}

// New creates a mask transformer for pattern.
// The pattern must contain at least one slot.
func New(pattern string, opts ...Option) (*Transformer, error) {
	t := &Transformer{
		pattern: []rune(pattern),
		signal:  DefaultSlotSignal,
	}

	for _, opt := range opts {
		opt(t)
	}

	if len(t.pattern) == 0 {
		return nil, visual.NewConfigError("mask", "pattern is empty")
	}
	if !utf8.ValidRune(t.signal) {
		return nil, visual.NewConfigError("slotSignal", "not a valid character")
	}

	for _, r := range t.pattern {
		if r == t.signal {
			t.slots++
		}
	}
	if t.slots == 0 {
		return nil, visual.NewConfigError("mask", fmt.Sprintf("pattern %q has no %q slots", pattern, t.signal))
	}

	return t, nil
}

// Pattern returns the template string.
func (t *Transformer) Pattern() string {
	return string(t.pattern)
}

// SlotSignal returns the rune that marks slots.
func (t *Transformer) SlotSignal() rune {
	return t.signal
}

// Slots returns how many raw characters the pattern can hold.
func (t *Transformer) Slots() int {
	return t.slots
}

// Transform formats raw through the pattern.
func (t *Transformer) Transform(raw string) visual.TransformedText {
	if raw == "" {
		return visual.Unchanged(raw)
	}

	src := []rune(raw)

	var b strings.Builder
	b.Grow(len(raw) + len(t.pattern))

	// Decoration is held back until a slot after it receives a character,
	// or until every slot is filled.
	pending := 0
	consumed := 0
	written := 0
	for i, r := range t.pattern {
		if r != t.signal {
			pending++
			continue
		}
		if consumed >= len(src) {
			break
		}
		for _, d := range t.pattern[i-pending : i] {
			b.WriteRune(d)
		}
		b.WriteRune(src[consumed])
		written += pending + 1
		pending = 0
		consumed++
	}
	if consumed == t.slots {
		for _, d := range t.pattern[len(t.pattern)-pending:] {
			b.WriteRune(d)
		}
		written += pending
	}

	return visual.TransformedText{
		Text: b.String(),
		Mapping: Mapping{
			pattern:      t.pattern,
			signal:       t.signal,
			rawLen:       len(src),
			formattedLen: written,
		},
	}
}

// Mapping converts offsets for one mask Transform result.
type Mapping struct {
	pattern      []rune
	signal       rune
	rawLen       int
	formattedLen int
}

// ToFormatted returns offset plus the decoration that precedes slot
// number offset in the pattern, clamped to the formatted length. Past the
// last slot that includes trailing decoration, so the end of a filled
// mask maps to the end of the text.
func (m Mapping) ToFormatted(offset int) int {
	offset = visual.Clamp(offset, m.rawLen)
	return visual.Clamp(offset+m.decorationBefore(offset), m.formattedLen)
}

// ToRaw returns the number of slots among the first offset formatted
// characters.
func (m Mapping) ToRaw(offset int) int {
	offset = visual.Clamp(offset, m.formattedLen)
	return offset - m.decorationWithin(offset)
}

// decorationBefore counts non-slot runes ahead of the slot with index
// slot. Past the last slot it counts every decoration in the pattern.
func (m Mapping) decorationBefore(slot int) int {
	decoration := 0
	seen := 0
	for _, r := range m.pattern {
		if r != m.signal {
			decoration++
			continue
		}
		seen++
		if seen > slot {
			break
		}
	}
	return decoration
}

// decorationWithin counts non-slot runes in the first n pattern positions.
func (m Mapping) decorationWithin(n int) int {
	decoration := 0
	for _, r := range m.pattern[:min(n, len(m.pattern))] {
		if r != m.signal {
			decoration++
		}
	}
	return decoration
}
