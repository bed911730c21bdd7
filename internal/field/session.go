package field

import (
	"slices"

	"github.com/dshills/fieldmask/internal/visual"
)

// View is what an editing surface draws: the formatted text plus the
// cursor and selection translated into formatted offsets.
type View struct {
	Text string

	// Cursor is the formatted offset of the selection head.
	Cursor int

	// SelStart and SelEnd bound the highlighted formatted range.
	// They are equal when nothing is selected.
	SelStart int
	SelEnd   int
}

// HasSelection reports whether the view highlights a range.
func (v View) HasSelection() bool {
	return v.SelStart != v.SelEnd
}

// Session edits one raw value through a display transformer.
//
// The raw value and selection are kept in raw offsets. Every change
// re-runs the transformer so View always reflects a fresh mapping.
// A Session is not safe for concurrent use.
type Session struct {
	t   visual.Transformer
	raw []rune
	sel Selection
	out visual.TransformedText

	maxLen    int
	accept    func(rune) bool
	initValue string
}

// NewSession creates a session formatting through t.
func NewSession(t visual.Transformer, opts ...Option) *Session {
	s := &Session{
		t:      t,
		accept: AcceptAny,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.initValue != "" {
		s.raw = s.filter([]rune(s.initValue), s.maxLen)
		s.sel = NewCursorSelection(len(s.raw))
		s.initValue = ""
	}
	s.refresh()

	return s
}

// Value returns the raw value.
func (s *Session) Value() string {
	return string(s.raw)
}

// Len returns the raw value's length in runes.
func (s *Session) Len() int {
	return len(s.raw)
}

// Selection returns the selection in raw offsets.
func (s *Session) Selection() Selection {
	return s.sel
}

// Transformed returns the result of the most recent transform.
func (s *Session) Transformed() visual.TransformedText {
	return s.out
}

// View returns the formatted text with cursor and selection mapped into it.
func (s *Session) View() View {
	m := s.out.Mapping
	return View{
		Text:     s.out.Text,
		Cursor:   m.ToFormatted(s.sel.Head),
		SelStart: m.ToFormatted(s.sel.Start()),
		SelEnd:   m.ToFormatted(s.sel.End()),
	}
}

// SetValue replaces the raw value and moves the cursor to its end.
// The value is filtered like typed input.
func (s *Session) SetValue(raw string) {
	s.raw = s.filter([]rune(raw), s.maxLen)
	s.sel = NewCursorSelection(len(s.raw))
	s.refresh()
}

// SetTransformer switches the display format, keeping the raw value.
func (s *Session) SetTransformer(t visual.Transformer) {
	s.t = t
	s.refresh()
}

// SetCursor places the cursor at a raw offset.
func (s *Session) SetCursor(offset int) error {
	if err := visual.CheckOffset(offset, len(s.raw)); err != nil {
		return err
	}
	s.sel = NewCursorSelection(offset)
	return nil
}

// MoveToFormatted places the cursor at the raw position behind a
// formatted offset, such as a mouse click.
func (s *Session) MoveToFormatted(offset int) {
	s.sel = NewCursorSelection(s.out.Mapping.ToRaw(offset))
}

// SelectFormatted selects between two formatted offsets.
func (s *Session) SelectFormatted(anchor, head int) {
	m := s.out.Mapping
	s.sel = NewSelection(m.ToRaw(anchor), m.ToRaw(head))
}

// SelectAll selects the whole raw value.
func (s *Session) SelectAll() {
	s.sel = NewSelection(0, len(s.raw))
}

// Left moves the cursor one raw character left, or collapses a
// selection to its start.
func (s *Session) Left() {
	if !s.sel.IsEmpty() {
		s.sel = NewCursorSelection(s.sel.Start())
		return
	}
	s.sel = NewCursorSelection(max(s.sel.Head-1, 0))
}

// Right moves the cursor one raw character right, or collapses a
// selection to its end.
func (s *Session) Right() {
	if !s.sel.IsEmpty() {
		s.sel = NewCursorSelection(s.sel.End())
		return
	}
	s.sel = NewCursorSelection(min(s.sel.Head+1, len(s.raw)))
}

// ExtendLeft moves the selection head one character left.
func (s *Session) ExtendLeft() {
	s.sel = s.sel.Extend(max(s.sel.Head-1, 0))
}

// ExtendRight moves the selection head one character right.
func (s *Session) ExtendRight() {
	s.sel = s.sel.Extend(min(s.sel.Head+1, len(s.raw)))
}

// Home moves the cursor to the start.
func (s *Session) Home() {
	s.sel = NewCursorSelection(0)
}

// End moves the cursor to the end.
func (s *Session) End() {
	s.sel = NewCursorSelection(len(s.raw))
}

// Insert replaces the selection with text and returns how many runes
// were accepted. Rejected runes are dropped; accepted runes beyond the
// maximum length are discarded.
func (s *Session) Insert(text string) int {
	start, end := s.sel.Start(), s.sel.End()

	room := 0
	if s.maxLen > 0 {
		room = s.maxLen - (len(s.raw) - (end - start))
		if room <= 0 {
			return 0
		}
	}

	runes := s.filter([]rune(text), room)
	if len(runes) == 0 {
		return 0
	}

	s.deleteRange(start, end)
	s.raw = slices.Insert(s.raw, start, runes...)
	s.sel = NewCursorSelection(AdjustForInsertion(start, start, len(runes)))
	s.refresh()

	return len(runes)
}

// Backspace deletes the selection, or the raw character before the
// cursor. It reports whether anything was removed.
func (s *Session) Backspace() bool {
	if !s.sel.IsEmpty() {
		s.deleteRange(s.sel.Start(), s.sel.End())
		s.refresh()
		return true
	}
	if s.sel.Head == 0 {
		return false
	}
	s.deleteRange(s.sel.Head-1, s.sel.Head)
	s.refresh()
	return true
}

// Delete deletes the selection, or the raw character after the cursor.
// It reports whether anything was removed.
func (s *Session) Delete() bool {
	if !s.sel.IsEmpty() {
		s.deleteRange(s.sel.Start(), s.sel.End())
		s.refresh()
		return true
	}
	if s.sel.Head >= len(s.raw) {
		return false
	}
	s.deleteRange(s.sel.Head, s.sel.Head+1)
	s.refresh()
	return true
}

// Clear empties the value.
func (s *Session) Clear() {
	s.raw = s.raw[:0]
	s.sel = NewCursorSelection(0)
	s.refresh()
}

// deleteRange removes raw[start:end] and adjusts the selection.
func (s *Session) deleteRange(start, end int) {
	if start >= end {
		return
	}
	s.raw = slices.Delete(s.raw, start, end)
	s.sel = NewSelection(
		AdjustForDeletion(s.sel.Anchor, start, end),
		AdjustForDeletion(s.sel.Head, start, end),
	)
}

// filter keeps accepted runes, at most limit of them when limit > 0.
func (s *Session) filter(runes []rune, limit int) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if limit > 0 && len(out) >= limit {
			break
		}
		if s.accept == nil || s.accept(r) {
			out = append(out, r)
		}
	}
	return out
}

// refresh re-runs the transformer. The previous mapping is stale once
// the raw value changes.
func (s *Session) refresh() {
	s.out = s.t.Transform(string(s.raw))
	s.sel = s.sel.Clamp(len(s.raw))
}
