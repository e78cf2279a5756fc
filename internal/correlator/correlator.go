// Package correlator locates the symbol-timing peak within the
// preamble's alignment pattern and resolves the 180-degree phase
// ambiguity left open by the PLL's squared error detector. Ported from
// original_source/inc/correlator.h.
package correlator

import "quadra/internal/dsp"

const (
	patternLength       = 8
	peakThreshold       = patternLength / 2.0 // 4.0
	numCorrelationPeaks = 4
)

// alignmentPattern is the known preamble pattern the correlator matches
// against: two bipolar length-8 sequences, one per baseband axis. Part
// of the external interoperability contract (spec.md §4.5/§6).
var alignmentPattern = [2][patternLength]float32{
	{-1, -1, -1, 0, 1, 1, 1, 0},
	{-1, 0, 1, 1, 1, 0, -1, -1},
}

// Correlator holds the matched-filter history and the phase-ambiguity
// vote accumulated across the four peaks of the alignment pattern.
type Correlator struct {
	vHistory         *dsp.Window[dsp.Vector]
	phaseHistory     *dsp.Window[float32]
	correlationHist  *dsp.Window[float32]
	maximum          float32
	correlationPeaks uint32
	decisionVector   *dsp.Window[float32]
}

// New allocates a Correlator with all windows sized per spec.md §4.5.
func New() *Correlator {
	c := &Correlator{
		vHistory:        dsp.NewWindow[dsp.Vector](patternLength),
		phaseHistory:    dsp.NewWindow[float32](3),
		correlationHist: dsp.NewWindow[float32](3),
		decisionVector:  dsp.NewWindow[float32](numCorrelationPeaks),
	}
	return c
}

// Init resets the correlator to a fresh acquisition state.
func (c *Correlator) Init() {
	c.vHistory.Init()
	c.phaseHistory.Init()
	c.correlationHist.Init()
	c.maximum = 0
	c.correlationPeaks = 0
	c.decisionVector.Init()
}

// Reset is an alias of Init, matching the reference's separate Reset()
// entry point used when re-arming the correlator after carrier lock.
func (c *Correlator) Reset() {
	c.Init()
}

// Push records a (phase, v) sample into the correlator's history without
// running the matched filter — used by CarrierLock before the correlator
// has anything to decide; Align feeds samples through Process instead.
func (c *Correlator) Push(phase float32, v dsp.Vector) {
	c.phaseHistory.Write(phase)
	c.vHistory.Write(v)
}

// Process pushes (phase, v), runs the matched filter against the
// alignment pattern, and returns the decision phase (0 or 0.5) once four
// correlation peaks have been observed.
func (c *Correlator) Process(phase float32, v dsp.Vector) (decisionPhase float32, ok bool) {
	c.Push(phase, v)

	var correlation float32
	for i := 0; i < patternLength; i++ {
		sample := c.vHistory.At(i)
		correlation += alignmentPattern[0][i] * sample.I
		correlation += alignmentPattern[1][i] * sample.Q
	}

	if correlation > c.maximum {
		c.maximum = correlation
	}

	c.correlationHist.Write(correlation)

	peak := c.correlationHist.At(1) == c.maximum &&
		c.correlationHist.At(0) < c.maximum &&
		c.maximum >= peakThreshold

	if correlation < 0 {
		// Reset the peak detector at each valley so several consecutive
		// peaks can be detected.
		c.maximum = 0
	}

	if !peak {
		return 0, false
	}

	// Approximate the sub-sample position of the peak by comparing the
	// relative correlation of the samples before and after the raw peak.
	left := c.correlationHist.At(1) - c.correlationHist.At(2)
	right := c.correlationHist.At(1) - c.correlationHist.At(0)
	tilt := 0.5 * (left - right) / (left + right)

	a := c.phaseHistory.At(1)
	var b float32
	if tilt < 0 {
		b = c.phaseHistory.At(2)
	} else {
		b = c.phaseHistory.At(0)
	}
	t := dsp.Abs(tilt)
	phaseI := dsp.Lerp(dsp.Cosine(a), dsp.Cosine(b), t)

	// Only the in-phase component decides the 180-degree ambiguity; the
	// quadrature component is irrelevant to that decision.
	c.decisionVector.Write(phaseI)

	c.correlationPeaks++
	if c.correlationPeaks == numCorrelationPeaks {
		if dsp.Sum(c.decisionVector) > 0 {
			return 0, true
		}
		return 0.5, true
	}

	return 0, false
}

// Output returns the most recent raw correlation value, for debug/
// simulation accessors.
func (c *Correlator) Output() float32 {
	return c.correlationHist.At(0)
}
