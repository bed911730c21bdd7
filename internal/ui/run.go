package ui

import (
	"context"

	"github.com/dshills/fieldmask/internal/ui/backend"
)

// Result is the outcome of an editing run.
type Result struct {
	// Value is the raw value when editing ended.
	Value string
	// Formatted is the displayed text when editing ended.
	Formatted string
	// Submitted is true when the user accepted the value.
	Submitted bool
}

// Update changes the view from the event loop goroutine.
type Update func(*FieldView)

// Post queues fn to run on the event loop of b. It is safe to call from
// any goroutine.
func Post(b backend.Backend, fn Update) {
	b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: fn})
}

// Run initializes b, edits v until the user submits or cancels, and
// shuts b down. Enter submits; Escape and Ctrl-C cancel. When ctx is
// done Run returns ctx.Err().
func Run(ctx context.Context, b backend.Backend, v *FieldView) (Result, error) {
	if err := b.Init(); err != nil {
		return Result{}, err
	}
	defer b.Shutdown()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			b.PostEvent(backend.Event{Type: backend.EventInterrupt})
		case <-done:
		}
	}()

	result := func(submitted bool) Result {
		return Result{
			Value:     v.Session().Value(),
			Formatted: v.Session().View().Text,
			Submitted: submitted,
		}
	}

	v.Draw(b)
	for {
		ev := b.PollEvent()

		switch ev.Type {
		case backend.EventClosed:
			return result(false), nil

		case backend.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return result(false), err
			}
			if fn, ok := ev.Data.(Update); ok {
				fn(v)
				v.Draw(b)
			}
			continue
		}

		switch v.HandleEvent(ev) {
		case ActionSubmit:
			return result(true), nil
		case ActionCancel:
			return result(false), nil
		case ActionReject:
			b.Beep()
		case ActionRedraw:
			v.Draw(b)
		}
	}
}
