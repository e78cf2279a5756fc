// Package pll implements the second-order phase-locked loop that tracks
// the carrier: a unit-frequency NCO clocked once per audio sample, with
// a PI controller steering its step size from the demodulator's phase
// error. Reproduced from the reference PhaseLockedLoop (original_source
// inc/pll.h) with its constants and clamp/wrap semantics unchanged.
package pll

import "quadra/internal/dsp"

// Loop control constants. Positive error shrinks the step, slowing the
// NCO down; these are part of the external interoperability contract
// and must not be retuned.
const (
	Kp          float32 = 0.02
	Ki          float32 = 200e-6
	WindupLimit float32 = 0.1
)

// PLL tracks phase in [0,1) (a fraction of one symbol cycle) and frequency
// via step in [0,1].
type PLL struct {
	nominalFrequency float32
	step             float32
	phase            float32
	prevPhase        float32
	err              float32
	accumulator      float32
}

// Init sets the nominal (free-running) frequency as a fraction of one
// cycle per sample and resets all other state.
func (p *PLL) Init(nominalFrequency float32) {
	p.nominalFrequency = nominalFrequency
	p.Reset()
}

// Reset restores step to the nominal frequency and zeros phase/error/
// accumulator, without forgetting the nominal frequency set by Init.
func (p *PLL) Reset() {
	p.step = p.nominalFrequency
	p.phase = 0
	p.err = 0
	p.accumulator = 0
	p.prevPhase = 0
}

func (p *PLL) Phase() float32 { return p.phase }
func (p *PLL) Step() float32  { return p.step }
func (p *PLL) Error() float32 { return p.err }

// ProcessError feeds a phase-error sample into the PI controller,
// updating the windup-limited accumulator and the NCO step.
func (p *PLL) ProcessError(err float32) {
	p.err = err

	p.accumulator += Ki * p.err
	p.accumulator = dsp.Clamp(p.accumulator, -WindupLimit, WindupLimit)

	pError := Kp * p.err
	iError := p.accumulator

	p.step = p.nominalFrequency * (1 - pError - iError)
	p.step = dsp.Clamp(p.step, 0, 1)
}

// Advance moves the NCO forward by one sample period.
func (p *PLL) Advance() {
	p.prevPhase = p.phase
	p.phase = dsp.FractionalPart(p.phase + p.step)
}

// PhaseTrigger reports the fractional sample delay, in [0,1), between
// the most recent ascending zero-crossing of (phase - phi) and the
// current sample, or ok=false if no crossing occurred this step.
func (p *PLL) PhaseTrigger(phi float32) (delay float32, ok bool) {
	w := dsp.Wrap(p.phase - phi)
	wPrev := dsp.Wrap(p.prevPhase - phi)
	if w < wPrev && p.phase != p.prevPhase {
		return w / dsp.Wrap(p.phase-p.prevPhase), true
	}
	return 0, false
}
