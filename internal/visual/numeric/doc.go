// Package numeric formats raw digit input as a grouped decimal amount.
//
// The raw value is the digits the user typed, most significant first, with
// no separators. The last DecimalDigits of them form the fraction and the
// rest the integer part, so typing "1", "2", "3" shows "0.01", "0.12",
// "1.23" in turn, the way a cash register fills from the right.
//
//	t, _ := numeric.New()
//	t.Transform("123456789").Text // "1,234,567.89"
//	t.Transform("5").Text         // "0.05"
//
// # Offset mapping
//
// While the raw value fits inside the fraction, raw offsets are anchored
// to the end of the formatted text since the leading "0." and the zero
// padding are not typed characters. Once integer digits exist, formatted
// offsets are raw offsets plus the separators passed over.
//
// Separators must not be digit characters; New rejects them because the
// mapping tells typed characters from separators by digit class.
package numeric
