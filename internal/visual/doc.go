// Package visual defines the contract shared by fieldmask's display
// transformers.
//
// A transformer turns the raw value typed by a user ("12345678") into the
// text shown in the field ("12/34/5678") and returns an OffsetMapping that
// converts positions between the two. The raw value stays the value of
// record; the formatted text is a projection recomputed on every change.
//
// # Offsets
//
// All offsets count Unicode code points, not bytes. Offset 0 is the start
// of the text and offset len is the end; both are valid cursor positions.
//
// Queries outside [0, len] are clamped into range by every mapping in this
// module. Callers that would rather fail can check their input first with
// CheckOffset, which reports ErrInvalidOffset.
//
// # Lifetime
//
// A TransformedText is bound to the raw value it was computed from. Once
// the raw value changes the mapping is stale and must be replaced by the
// result of a new Transform call. Mappings hold copies of what they need,
// so a stale mapping is never unsafe to call, only wrong.
//
// # Implementations
//
//   - mask: literal template with placeholder slots ("##/##/####")
//   - numeric: thousands grouping with a fixed number of decimal digits
package visual
