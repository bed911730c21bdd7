package mask

// DefaultSlotSignal marks a pattern position that takes one raw character.
const DefaultSlotSignal = '#'

// Option configures a Transformer during creation.
type Option func(*Transformer)

// WithSlotSignal sets the rune that marks slots in the pattern.
func WithSlotSignal(r rune) Option {
	return func(t *Transformer) {
		t.signal = r
	}
}
