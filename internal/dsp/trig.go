package dsp

import "math"

// Wrap folds x into [0, 1), matching frac(x) = x - floor(x) used
// throughout the PLL and correlator for phase arithmetic.
func Wrap(x float32) float32 {
	return x - float32(math.Floor(float64(x)))
}

// FractionalPart is Wrap under another name, kept distinct because the
// reference source uses it at call sites where the argument is a sample
// delay rather than a phase — same operation, different intent.
func FractionalPart(x float32) float32 {
	return Wrap(x)
}

// Lerp linearly interpolates from a to b by t: a when t=0, b when t=1.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampInt truncates x toward zero and clamps the result to [lo, hi],
// matching the C++ reference's implicit float->int32_t conversion ahead
// of its Clamp<int32_t> call in DecisionIndex.
func ClampInt(x float32, lo, hi int32) int32 {
	i := int32(x)
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

// Abs is float32 absolute value.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// sineTableSize trades table memory for interpolation error; at this
// resolution the worst-case error is well under the symbol-timing
// jitter the correlator already tolerates.
const sineTableSize = 4096

var sineTable [sineTableSize + 1]float32

func init() {
	for i := range sineTable {
		sineTable[i] = float32(math.Sin(2 * math.Pi * float64(i) / sineTableSize))
	}
}

// lookupSine evaluates sin(2*pi*phase) for phase in [0,1) via a
// linearly-interpolated lookup table, avoiding a transcendental call
// per audio sample on embedded targets (spec design note, §9).
func lookupSine(phase float32) float32 {
	phase = Wrap(phase)
	f := phase * sineTableSize
	i := int(f)
	frac := f - float32(i)
	return Lerp(sineTable[i], sineTable[i+1], frac)
}

// Sine returns sin(2*pi*phase) for phase expressed as a fraction of a
// cycle in [0,1).
func Sine(phase float32) float32 {
	return lookupSine(phase)
}

// Cosine returns cos(2*pi*phase) for phase expressed as a fraction of a
// cycle in [0,1), via a quarter-cycle shift of the sine table.
func Cosine(phase float32) float32 {
	return lookupSine(phase + 0.25)
}
