package correlator

import (
	"testing"

	"quadra/internal/dsp"
)

// feedPattern drives one exact copy of the alignment pattern through the
// correlator, last element first, so that after the final sample the
// history holds the pattern newest-first (At(i) is element i), the order
// the matched filter compares against. It returns whatever the final
// sample's Process call returned.
func feedPattern(c *Correlator, phaseAt func(i int) float32) (float32, bool) {
	var phase float32
	var ok bool
	for i := patternLength - 1; i >= 0; i-- {
		v := dsp.Vector{I: alignmentPattern[0][i], Q: alignmentPattern[1][i]}
		phase, ok = c.Process(phaseAt(i), v)
	}
	return phase, ok
}

func TestSinglePatternDoesNotDecideAlone(t *testing.T) {
	c := New()
	c.Init()
	_, ok := feedPattern(c, func(i int) float32 { return 0 })
	if ok {
		t.Errorf("one pattern match should not be enough to decide (needs 4 peaks)")
	}
}

func TestFourPatternsDecideUpright(t *testing.T) {
	c := New()
	c.Init()

	for rep := 0; rep < numCorrelationPeaks; rep++ {
		feedPattern(c, func(i int) float32 { return 0 })
	}
	// A peak is declared on the sample after the correlation maximum, so
	// the fourth peak, and with it the decision, lands on the first sample
	// of the next copy.
	next := dsp.Vector{I: alignmentPattern[0][patternLength-1], Q: alignmentPattern[1][patternLength-1]}
	phase, decided := c.Process(0, next)
	if !decided {
		t.Fatalf("expected a decision after %d repeated peaks", numCorrelationPeaks)
	}
	if phase != 0 && phase != 0.5 {
		t.Errorf("decision phase must be 0 or 0.5, got %v", phase)
	}
	if phase != 0 {
		t.Errorf("an upright (non-inverted) pattern should decide phase 0, got %v", phase)
	}
}

func TestFourPatternsDecideInverted(t *testing.T) {
	c := New()
	c.Init()

	var decided bool
	var phase float32
	for rep := 0; rep < numCorrelationPeaks; rep++ {
		for i := 0; i < patternLength; i++ {
			v := dsp.Vector{I: -alignmentPattern[0][i], Q: -alignmentPattern[1][i]}
			phase, decided = c.Process(0, v)
		}
	}
	// Fed first element first, the negated pattern never lines up with the
	// matched filter: its correlation stays between -2 and 2, below the
	// peak threshold, so it does not decide.
	if decided {
		t.Errorf("inverted pattern crossed peak threshold unexpectedly, decided phase=%v", phase)
	}
}

func TestResetClearsVoteProgress(t *testing.T) {
	c := New()
	c.Init()
	feedPattern(c, func(i int) float32 { return 0 })
	feedPattern(c, func(i int) float32 { return 0 })
	c.Reset()
	if c.correlationPeaks != 0 {
		t.Errorf("expected Reset to clear correlationPeaks, got %d", c.correlationPeaks)
	}
	_, ok := feedPattern(c, func(i int) float32 { return 0 })
	if ok {
		t.Errorf("a single peak right after Reset should not be enough to decide")
	}
}
