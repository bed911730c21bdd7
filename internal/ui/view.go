// Package ui draws a single formatted input field and runs its event
// loop on a terminal backend.
package ui

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/fieldmask/internal/field"
	"github.com/dshills/fieldmask/internal/ui/backend"
)

// Action tells the event loop what a handled event requires.
type Action int

const (
	// ActionNone means the event changed nothing.
	ActionNone Action = iota
	// ActionRedraw means the field must be drawn again.
	ActionRedraw
	// ActionReject means input was refused; the loop beeps.
	ActionReject
	// ActionSubmit ends editing and keeps the value.
	ActionSubmit
	// ActionCancel ends editing and discards the value.
	ActionCancel
)

// ViewOption configures a FieldView.
type ViewOption func(*FieldView)

// WithLabel sets the label drawn before the field.
func WithLabel(label string) ViewOption {
	return func(v *FieldView) {
		v.label = label
	}
}

// WithPlaceholder sets the text shown while the field is empty.
func WithPlaceholder(text string) ViewOption {
	return func(v *FieldView) {
		v.placeholder = text
	}
}

// WithPosition sets the top-left corner of the view.
func WithPosition(x, y int) ViewOption {
	return func(v *FieldView) {
		v.x, v.y = x, y
	}
}

// WithStatus enables a status row below the field showing the raw value.
func WithStatus(show bool) ViewOption {
	return func(v *FieldView) {
		v.status = show
	}
}

// FieldView renders a field.Session and translates terminal events into
// session edits. Screen columns are mapped to formatted offsets using
// each rune's display width.
type FieldView struct {
	session     *field.Session
	label       string
	placeholder string
	status      bool
	x, y        int

	// dragAnchor is the formatted offset where a mouse drag started,
	// or -1 when no button is held.
	dragAnchor int

	labelStyle       backend.Style
	textStyle        backend.Style
	selectionStyle   backend.Style
	placeholderStyle backend.Style
	statusStyle      backend.Style
}

// NewFieldView creates a view over s.
func NewFieldView(s *field.Session, opts ...ViewOption) *FieldView {
	v := &FieldView{
		session:          s,
		dragAnchor:       -1,
		labelStyle:       backend.DefaultStyle().WithAttributes(backend.AttrBold),
		textStyle:        backend.DefaultStyle().WithAttributes(backend.AttrUnderline),
		selectionStyle:   backend.DefaultStyle().WithAttributes(backend.AttrReverse),
		placeholderStyle: backend.DefaultStyle().WithForeground(backend.ColorGray).WithAttributes(backend.AttrDim),
		statusStyle:      backend.DefaultStyle().WithForeground(backend.ColorGray),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Session returns the session being edited.
func (v *FieldView) Session() *field.Session {
	return v.session
}

// SetSession replaces the session, for example after presets reload.
func (v *FieldView) SetSession(s *field.Session) {
	v.session = s
	v.dragAnchor = -1
}

// SetLabel changes the label.
func (v *FieldView) SetLabel(label string) {
	v.label = label
}

// SetPlaceholder changes the placeholder.
func (v *FieldView) SetPlaceholder(text string) {
	v.placeholder = text
}

// textX is the column where formatted text starts.
func (v *FieldView) textX() int {
	if v.label == "" {
		return v.x
	}
	return v.x + runewidth.StringWidth(v.label) + 2
}

// Draw renders the view and places the cursor.
func (v *FieldView) Draw(b backend.Backend) {
	width, _ := b.Size()
	view := v.session.View()

	clearRow(b, v.y, width)
	if v.label != "" {
		col := drawString(b, v.x, v.y, v.label, v.labelStyle)
		drawString(b, col, v.y, ": ", v.labelStyle)
	}

	col := v.textX()
	if view.Text == "" && v.placeholder != "" {
		drawString(b, col, v.y, v.placeholder, v.placeholderStyle)
	} else {
		for i, r := range []rune(view.Text) {
			style := v.textStyle
			if i >= view.SelStart && i < view.SelEnd {
				style = v.selectionStyle
			}
			b.SetCell(col, v.y, backend.Cell{Rune: r, Style: style})
			col += cellWidth(r)
		}
	}

	if v.status {
		clearRow(b, v.y+1, width)
		drawString(b, v.x, v.y+1, "raw: "+v.session.Value(), v.statusStyle)
	}

	b.ShowCursor(v.columnOf(view.Text, view.Cursor), v.y)
	b.Show()
}

// columnOf returns the screen column of formatted offset n.
func (v *FieldView) columnOf(text string, n int) int {
	col := v.textX()
	for i, r := range []rune(text) {
		if i >= n {
			break
		}
		col += cellWidth(r)
	}
	return col
}

// offsetAt returns the formatted offset for screen column col. A click
// on a character puts the cursor before it; a click past the end puts
// it at the end.
func (v *FieldView) offsetAt(col int) int {
	text := []rune(v.session.View().Text)
	x := v.textX()
	if col <= x {
		return 0
	}
	for i, r := range text {
		w := cellWidth(r)
		if col < x+w {
			return i
		}
		x += w
	}
	return len(text)
}

// HandleEvent applies ev to the session.
func (v *FieldView) HandleEvent(ev backend.Event) Action {
	switch ev.Type {
	case backend.EventKey:
		return v.handleKey(ev)
	case backend.EventMouse:
		return v.handleMouse(ev)
	case backend.EventResize:
		return ActionRedraw
	default:
		return ActionNone
	}
}

func (v *FieldView) handleKey(ev backend.Event) Action {
	s := v.session
	shift := ev.Mod.Has(backend.ModShift)

	switch ev.Key {
	case backend.KeyRune:
		if s.Insert(string(ev.Rune)) == 0 {
			return ActionReject
		}
	case backend.KeyBackspace:
		if !s.Backspace() {
			return ActionReject
		}
	case backend.KeyDelete:
		if !s.Delete() {
			return ActionReject
		}
	case backend.KeyLeft:
		if shift {
			s.ExtendLeft()
		} else {
			s.Left()
		}
	case backend.KeyRight:
		if shift {
			s.ExtendRight()
		} else {
			s.Right()
		}
	case backend.KeyHome, backend.KeyCtrlA:
		s.Home()
	case backend.KeyEnd, backend.KeyCtrlE:
		s.End()
	case backend.KeyCtrlU:
		s.Clear()
	case backend.KeyEnter:
		return ActionSubmit
	case backend.KeyEscape, backend.KeyCtrlC:
		return ActionCancel
	default:
		return ActionNone
	}
	return ActionRedraw
}

func (v *FieldView) handleMouse(ev backend.Event) Action {
	if ev.MouseButton != backend.MouseLeft {
		v.dragAnchor = -1
		return ActionNone
	}
	if v.dragAnchor < 0 && ev.MouseY != v.y {
		return ActionNone
	}

	offset := v.offsetAt(ev.MouseX)
	if v.dragAnchor < 0 {
		v.dragAnchor = offset
		v.session.MoveToFormatted(offset)
	} else {
		v.session.SelectFormatted(v.dragAnchor, offset)
	}
	return ActionRedraw
}

func cellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

func drawString(b backend.Backend, x, y int, s string, style backend.Style) int {
	for _, r := range s {
		b.SetCell(x, y, backend.Cell{Rune: r, Style: style})
		x += cellWidth(r)
	}
	return x
}

func clearRow(b backend.Backend, y, width int) {
	for x := 0; x < width; x++ {
		b.SetCell(x, y, backend.EmptyCell())
	}
}
