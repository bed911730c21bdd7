// Package mask formats raw input through a literal template.
//
// A pattern such as "##/##/####" mixes slot characters, which each consume
// one raw character in order, with decoration, which is copied verbatim:
//
//	t, _ := mask.New("##/##/####")
//	out := t.Transform("12345678")
//	out.Text                   // "12/34/5678"
//	out.Mapping.ToFormatted(4) // 6, just past the second '/'
//	out.Mapping.ToRaw(6)       // 4
//
// Output stops at the last consumed raw character, so partial input never
// shows decoration the user has not reached yet ("12" stays "12", not
// "12/"). Decoration ahead of the first slot is shown as soon as there is
// any input, and decoration after the last slot once every slot is filled
// ("(###)" with "123" shows "(123)"). Raw characters beyond the pattern's
// slot count are dropped from the display.
//
// The slot character defaults to '#' and can be changed with
// WithSlotSignal.
package mask
