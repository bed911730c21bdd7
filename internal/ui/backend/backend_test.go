package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(40, 3)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 40 || h != 3 {
		t.Errorf("expected size (40, 3), got (%d, %d)", w, h)
	}
	if got := b.GetCell(0, 0); got != EmptyCell() {
		t.Errorf("new cell = %+v, want empty", got)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(40, 3)
	b.Init()

	cell := Cell{Rune: 'X', Style: DefaultStyle().WithForeground(ColorRed)}
	b.SetCell(10, 1, cell)

	if got := b.GetCell(10, 1); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.GetCell(-1, 0); got != EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendRowAndClear(t *testing.T) {
	b := NewNullBackend(5, 1)
	b.Init()

	for i, r := range "12/3" {
		b.SetCell(i, 0, Cell{Rune: r, Style: DefaultStyle()})
	}
	if got := b.Row(0); got != "12/3 " {
		t.Errorf("Row(0) = %q, want %q", got, "12/3 ")
	}

	b.Clear()
	if got := b.Row(0); got != "     " {
		t.Errorf("Row(0) after Clear = %q", got)
	}
	if b.Row(5) != "" {
		t.Error("Row out of range should be empty")
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(40, 3)
	b.Init()

	b.ShowCursor(15, 1)
	x, y, visible := b.CursorPosition()
	if x != 15 || y != 1 || !visible {
		t.Errorf("cursor position: expected (15, 1, true), got (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible = b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendPostEvent(t *testing.T) {
	b := NewNullBackend(40, 3)
	b.Init()

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: '7'})
	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Rune != '7' {
		t.Errorf("PollEvent = %+v", ev)
	}
}

func TestNullBackendBeep(t *testing.T) {
	b := NewNullBackend(1, 1)
	b.Beep()
	b.Beep()
	if b.Beeps() != 2 {
		t.Errorf("Beeps() = %d, want 2", b.Beeps())
	}
}

func TestModMaskHas(t *testing.T) {
	mask := ModShift | ModCtrl
	if !mask.Has(ModShift) || !mask.Has(ModCtrl) {
		t.Error("mask should have shift and ctrl")
	}
	if mask.Has(ModAlt) {
		t.Error("mask should not have alt")
	}
}

func TestStyle(t *testing.T) {
	s := DefaultStyle().WithAttributes(AttrBold).WithAttributes(AttrReverse)
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Errorf("Attributes = %b", s.Attributes)
	}
	if s.Attributes.Has(AttrDim) {
		t.Error("unexpected dim attribute")
	}
}

func TestTerminal_Simulation(t *testing.T) {
	term, sim := NewSimulation(20, 2)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Shutdown()

	if w, h := term.Size(); w != 20 || h != 2 {
		t.Errorf("Size() = (%d, %d), want (20, 2)", w, h)
	}

	style := DefaultStyle().WithForeground(ColorGreen).WithAttributes(AttrUnderline)
	term.SetCell(3, 1, Cell{Rune: '#', Style: style})
	term.Show()

	got := term.GetCell(3, 1)
	if got.Rune != '#' {
		t.Errorf("GetCell rune = %q, want '#'", got.Rune)
	}
	if got.Style.Foreground != ColorGreen || !got.Style.Attributes.Has(AttrUnderline) {
		t.Errorf("GetCell style = %+v, want %+v", got.Style, style)
	}

	term.ShowCursor(4, 1)
	term.Show()
	if x, y, visible := sim.GetCursor(); x != 4 || y != 1 || !visible {
		t.Errorf("cursor = (%d, %d, %v), want (4, 1, true)", x, y, visible)
	}
}

func TestTerminal_PostEvent(t *testing.T) {
	term, _ := NewSimulation(20, 2)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Shutdown()

	term.PostEvent(Event{Type: EventKey, Key: KeyLeft})
	term.PostEvent(Event{Type: EventInterrupt, Data: "reload"})

	for {
		ev := term.PollEvent()
		if ev.Type == EventKey {
			if ev.Key != KeyLeft {
				t.Errorf("Key = %v, want KeyLeft", ev.Key)
			}
			break
		}
	}
	for {
		ev := term.PollEvent()
		if ev.Type == EventInterrupt {
			if ev.Data != "reload" {
				t.Errorf("Data = %v, want reload", ev.Data)
			}
			break
		}
	}
}

func TestConvertEvent_Nil(t *testing.T) {
	if ev := convertEvent(nil); ev.Type != EventClosed {
		t.Errorf("convertEvent(nil).Type = %v, want EventClosed", ev.Type)
	}
}

func TestConvertKeyRoundTrip(t *testing.T) {
	keys := []Key{KeyEscape, KeyEnter, KeyTab, KeyBackspace, KeyDelete, KeyHome, KeyEnd, KeyLeft, KeyRight, KeyUp, KeyDown, KeyCtrlA, KeyCtrlC, KeyCtrlE, KeyCtrlU}
	for _, k := range keys {
		if got := convertKey(convertToTcellKey(k)); got != k {
			t.Errorf("round trip of %d = %d", k, got)
		}
	}
	if convertKey(tcell.KeyF5) != KeyNone {
		t.Error("unmapped keys should convert to KeyNone")
	}
}

func TestConvertMod(t *testing.T) {
	m := convertMod(tcell.ModShift | tcell.ModAlt)
	if !m.Has(ModShift) || !m.Has(ModAlt) || m.Has(ModCtrl) {
		t.Errorf("convertMod = %b", m)
	}
	if convertToTcellMod(m) != tcell.ModShift|tcell.ModAlt {
		t.Error("convertToTcellMod did not round trip")
	}
}

func TestConvertMouseButton(t *testing.T) {
	tests := []struct {
		in   tcell.ButtonMask
		want MouseButton
	}{
		{tcell.Button1, MouseLeft},
		{tcell.Button2, MouseRight},
		{tcell.Button3, MouseMiddle},
		{tcell.WheelUp, MouseWheelUp},
		{tcell.ButtonNone, MouseNone},
	}
	for _, tt := range tests {
		if got := convertMouseButton(tt.in); got != tt.want {
			t.Errorf("convertMouseButton(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
