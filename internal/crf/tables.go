package crf

// Section holds one biquad's feed-forward (B) and feedback (A)
// coefficients. The leading feedback coefficient is implicitly 1 and not
// stored; A0 and A1 are the two stored feedback coefficients, subtracted
// in process, matching the reference (carrier_rejection_filter.h).
type Section struct {
	B0, B1, B2 float32
	A0, A1     float32
}

// The six coefficient tables below are reproduced bit-for-bit from
// original_source/inc/carrier_rejection_filter.h, which in turn are
// generated offline (inc/crf.py) as a Bessel lowpass realized as two
// cascaded second-order (biquad) sections, one table per supported
// symbol duration. These
// values are part of the external interoperability contract (spec.md
// §6) and must not be regenerated or rounded differently.
var (
	table05 = [2]Section{
		{3.92776413e-02, 7.85552825e-02, 3.92776413e-02, -3.79928658e-01, 5.60593774e-02},
		{1.00000000e+00, 2.00000000e+00, 1.00000000e+00, -3.20574398e-01, 2.50042978e-01},
	}
	table06 = [2]Section{
		{2.22461678e-02, 4.44923356e-02, 2.22461678e-02, -6.00047253e-01, 1.07855334e-01},
		{1.00000000e+00, 2.00000000e+00, 1.00000000e+00, -5.87365297e-01, 2.88296807e-01},
	}
	table08 = [2]Section{
		{8.90855348e-03, 1.78171070e-02, 8.90855348e-03, -8.90333311e-01, 2.12089103e-01},
		{1.00000000e+00, 2.00000000e+00, 1.00000000e+00, -9.30043914e-01, 3.73040930e-01},
	}
	table10 = [2]Section{
		{4.28742029e-03, 8.57484059e-03, 4.28742029e-03, -1.07701239e+00, 3.00943042e-01},
		{1.00000000e+00, 2.00000000e+00, 1.00000000e+00, -1.14096126e+00, 4.47300396e-01},
	}
	table12 = [2]Section{
		{2.32292006e-03, 4.64584012e-03, 2.32292006e-03, -1.20854549e+00, 3.73931646e-01},
		{1.00000000e+00, 2.00000000e+00, 1.00000000e+00, -1.28361256e+00, 5.08339473e-01},
	}
	table16 = [2]Section{
		{8.59253439e-04, 1.71850688e-03, 8.59253439e-04, -1.38286746e+00, 4.84047812e-01},
		{1.00000000e+00, 2.00000000e+00, 1.00000000e+00, -1.46367541e+00, 5.99552135e-01},
	}
)

// tableFor returns the two-section coefficient table for a given
// kSymbolDuration, or ok=false if that duration has no compiled table
// (construction-time check — spec.md §9 design note (b), the Go stand-in
// for the reference's static_assert on an unsupported template
// parameter).
func tableFor(symbolDuration int) (table [2]Section, ok bool) {
	switch symbolDuration {
	case 5:
		return table05, true
	case 6:
		return table06, true
	case 8:
		return table08, true
	case 10:
		return table10, true
	case 12:
		return table12, true
	case 16:
		return table16, true
	default:
		return table, false
	}
}
