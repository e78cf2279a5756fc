// Package scrambler whitens symbol payloads with a simple additive LCG
// stream cipher so that long runs of identical data don't stall the
// demodulator's AGC or carrier tracking. Ported from
// original_source/inc/scrambler.h.
package scrambler

const (
	multiplier uint32 = 1664525
	increment  uint32 = 1013904223
)

// Scrambler is a symmetric byte-wise XOR stream built from a 32-bit
// linear congruential generator. The same sequence of calls to Process
// on scrambled data recovers the original bytes — scrambling is its own
// inverse (spec.md §6, invariant P5).
type Scrambler struct {
	state uint32
}

// New returns a Scrambler in its initial (unscrambled) state.
func New() *Scrambler {
	s := &Scrambler{}
	s.Init()
	return s
}

// Init resets the generator to its seed state.
func (s *Scrambler) Init() {
	s.state = 0
}

// Process advances the generator by one step and XORs its top byte
// into b.
func (s *Scrambler) Process(b byte) byte {
	s.state = s.state*multiplier + increment
	return b ^ byte(s.state>>24)
}
