// Package field implements a single-line input field on top of a display
// transformer.
//
// The field stores what the user typed (the raw value) and a selection in
// raw offsets. Everything the user sees or clicks is in formatted offsets;
// Session converts between the two through the mapping returned by the
// latest Transform call:
//
//	t, _ := mask.New("##/##/####")
//	s := field.NewSession(t, field.WithAccept(field.AcceptDigits), field.WithMaxLength(8))
//	s.Insert("1234")
//	s.View().Text   // "12/34"
//	s.View().Cursor // 5
//	s.MoveToFormatted(3) // click after the '/'
//	s.Insert("9")
//	s.Value()       // "12934"
//
// Accepting or rejecting keystrokes is the field's job, not the
// transformer's: WithAccept and WithMaxLength filter input before it
// reaches the raw value.
package field
