// Package demod implements the demodulator state machine that
// orchestrates AGC, the PLL, the carrier-rejection filter, and the
// correlator to recover 4-bit symbols from a 16-QAM audio signal. Ported
// from original_source/inc/demodulator.h.
package demod

import (
	"fmt"

	"quadra/internal/correlator"
	"quadra/internal/crf"
	"quadra/internal/dsp"
	"quadra/internal/pll"
)

// State is one of the seven discrete states the demodulator cycles
// through from acquisition to locked data reception.
type State int

const (
	WaitToSettle State = iota
	SenseGain
	CarrierSync
	CarrierLock
	Align
	OK
	Error
)

func (s State) String() string {
	switch s {
	case WaitToSettle:
		return "WaitToSettle"
	case SenseGain:
		return "SenseGain"
	case CarrierSync:
		return "CarrierSync"
	case CarrierLock:
		return "CarrierLock"
	case Align:
		return "Align"
	case OK:
		return "OK"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

const (
	levelThreshold float32 = 0.05

	agcSlow float32 = 50e-6
	agcFast float32 = 1e-3
)

// Demodulator is the top-level state machine. One instance owns all of
// its state; there is no dynamic allocation past New/Init, and
// Process is the only method that mutates state from the audio path.
type Demodulator struct {
	sampleRate, symbolRate int
	symbolDuration         int

	settlingTime      int
	carrierSyncLength uint32

	state State

	hpf      dsp.HighPass
	follower dsp.LowPass
	agcGain  float32

	pll *pll.PLL
	crf *crf.Filter

	corr     *correlator.Correlator
	vHistory *dsp.Window[dsp.Vector]

	decisionPhase    float32
	skippedSamples   int
	carrierSyncCount uint32

	decide bool
}

// New constructs a Demodulator for the given sample rate and symbol
// rate. It returns an error if sampleRate is not an integer multiple of
// symbolRate, or if the resulting kSymbolDuration has no compiled CRF
// table — the construction-time stand-in for the reference's
// static_assert on an unsupported template parameter (spec.md §3, §9).
func New(sampleRate, symbolRate int) (*Demodulator, error) {
	if sampleRate <= 0 || symbolRate <= 0 {
		return nil, fmt.Errorf("demod: sample rate and symbol rate must be positive, got %d, %d", sampleRate, symbolRate)
	}
	if sampleRate%symbolRate != 0 {
		return nil, fmt.Errorf("demod: sample rate %d is not an integer multiple of symbol rate %d", sampleRate, symbolRate)
	}
	symbolDuration := sampleRate / symbolRate

	f, ok := crf.New(symbolDuration)
	if !ok {
		return nil, fmt.Errorf("demod: unsupported symbol duration %d (sample_rate/symbol_rate); supported values are 5,6,8,10,12,16", symbolDuration)
	}

	d := &Demodulator{
		sampleRate:        sampleRate,
		symbolRate:        symbolRate,
		symbolDuration:    symbolDuration,
		settlingTime:      int(float64(sampleRate) * 0.25),
		carrierSyncLength: uint32(float64(symbolRate) * 0.025),
		pll:               &pll.PLL{},
		crf:               f,
		corr:              correlator.New(),
		vHistory:          dsp.NewWindow[dsp.Vector](symbolDuration),
	}
	d.Init()
	return d, nil
}

// Init zeros all state and returns the demodulator to WaitToSettle. It
// is safe to call at any time except reentrantly from within Process.
func (d *Demodulator) Init() {
	d.state = WaitToSettle

	d.hpf.Init(0.001)
	d.follower.Init(0.0001)
	d.agcGain = 1

	d.pll.Init(1.0 / float32(d.symbolDuration))
	d.crf.Init()

	d.corr.Init()
	d.vHistory.Init()

	d.decisionPhase = 0
	d.skippedSamples = 0
	d.carrierSyncCount = 0

	d.decide = false
}

// Reset is an alias of Init (spec.md §6).
func (d *Demodulator) Reset() {
	d.Init()
}

// BeginCarrierSync jumps straight into carrier-sync acquisition,
// bypassing the settle/sense-gain gate — used when the caller already
// knows the signal is present and leveled.
func (d *Demodulator) BeginCarrierSync() {
	d.state = CarrierSync
	d.carrierSyncCount = 0
}

// Process runs one audio sample through the full receive chain. It
// returns the decoded 4-bit symbol and true if a data symbol was emitted
// on this sample, which happens only in the OK state; decisions made
// during carrier sync, lock and alignment are reported by Decide, not
// returned. At most one symbol is emitted per call, in strict
// correspondence with the PLL phase-trigger event that produced it.
func (d *Demodulator) Process(sample float32) (symbol byte, ok bool) {
	if d.state == Error {
		return 0, false
	}

	sample = d.hpf.Process(sample)

	env := dsp.Abs(sample)
	d.follower.Process(env)
	level := d.SignalPower()
	sample *= d.agcGain

	switch d.state {
	case WaitToSettle:
		if d.skippedSamples < d.settlingTime {
			d.skippedSamples++
		} else if level > levelThreshold {
			d.skippedSamples = 0
			d.state = SenseGain
		}
		return 0, false

	case SenseGain:
		if d.skippedSamples < d.settlingTime {
			d.skippedSamples++
		} else if level > levelThreshold {
			const twoOverPi = 0.64
			const sqrt2 = 1.41
			d.agcGain = twoOverPi / level * iqAmplitude * sqrt2
			d.BeginCarrierSync()
		} else {
			d.state = WaitToSettle
		}
		return 0, false

	default:
		if d.state == OK && level < levelThreshold {
			d.state = Error
			return 0, false
		}
		return d.demodulate(sample)
	}
}

// agcProcess applies one gain-tracking update, nudging agcGain against
// the power error between the raw and quantized vectors.
func (d *Demodulator) agcProcess(v, vBar dsp.Vector, speed float32) {
	errPower := v.Power() - vBar.Power()
	d.agcGain -= speed * errPower
}

// sampleSymbol linearly interpolates the baseband vector at a fractional
// sample delay into the past, clamped to the valid history range.
func (d *Demodulator) sampleSymbol(fractionalDelay float32) dsp.Vector {
	fractionalDelay = dsp.Clamp(fractionalDelay, 0, float32(d.symbolDuration)-1.001)
	iLate := int(fractionalDelay)
	iEarly := iLate + 1
	late := d.vHistory.At(iLate)
	early := d.vHistory.At(iEarly)
	return dsp.VectorLerp(late, early, dsp.FractionalPart(fractionalDelay))
}

// decideSymbol samples the baseband vector at the given fractional delay
// and maps it to its 4-bit symbol.
func (d *Demodulator) decideSymbol(fractionalDelay float32) byte {
	return symbolFor(d.sampleSymbol(fractionalDelay))
}

// demodulate runs the per-sample carrier-mix-CRF-decide chain once the
// level gate has passed, dispatching on the current acquisition/lock
// state exactly as spec.md §4.6 describes.
func (d *Demodulator) demodulate(sample float32) (symbol byte, ok bool) {
	phi := d.pll.Phase()
	osc := dsp.Vector{I: dsp.Cosine(phi), Q: -dsp.Sine(phi)}
	v := d.crf.Process(osc.Scale(2 * sample))
	vBar := quantizeVector(v)
	d.vHistory.Write(v)
	d.decide = false

	switch d.state {
	case CarrierSync:
		d.pll.ProcessError(v.Cross(carrierSyncVector))
		if delay, triggered := d.pll.PhaseTrigger(0); triggered {
			d.decide = true
			symbol = d.decideSymbol(delay)

			if symbol == carrierSyncSymbol {
				d.agcProcess(v, carrierSyncVector, agcFast)
				d.carrierSyncCount++
				if d.carrierSyncCount == d.carrierSyncLength {
					d.state = CarrierLock
					d.corr.Reset()
				}
			} else {
				d.carrierSyncCount = 0
			}
		}

	case CarrierLock:
		d.pll.ProcessError(v.Cross(vBar))
		delay0, ok0 := d.pll.PhaseTrigger(0)
		delay1, ok1 := d.pll.PhaseTrigger(0.5)
		if ok0 || ok1 {
			d.decide = true
			delay := delay0
			if !ok0 {
				delay = delay1
			}
			symbol = d.decideSymbol(delay)

			d.agcProcess(v, carrierSyncVector, agcFast)
			d.corr.Push(phi, v)

			if symbol != carrierSyncSymbol {
				d.state = Align
				d.decisionPhase = 0
			}
		}

	case Align:
		d.pll.ProcessError(v.Cross(vBar))
		delay0, ok0 := d.pll.PhaseTrigger(0)
		delay1, ok1 := d.pll.PhaseTrigger(0.5)
		if ok0 || ok1 {
			d.decide = true
			delay := delay0
			if !ok0 {
				delay = delay1
			}
			sampled := d.sampleSymbol(delay)
			if decisionPhase, decided := d.corr.Process(phi, sampled); decided {
				d.decisionPhase = decisionPhase
				d.state = OK
			}
		}

	case OK:
		phaseError := v.Cross(vBar)
		// Raised-cosine weighting rejects noisy error between symbols.
		phaseError *= 0.5 * (1 + dsp.Cosine(phi-d.decisionPhase))
		d.pll.ProcessError(phaseError)
		if delay, triggered := d.pll.PhaseTrigger(d.decisionPhase); triggered {
			d.decide = true
			symbol = d.decideSymbol(delay)
			ok = true
			d.agcProcess(v, vBar, agcSlow)
		}
	}

	d.pll.Advance()
	return symbol, ok
}

// Error reports whether the demodulator has entered the terminal error
// state; Process becomes a no-op until Reset.
func (d *Demodulator) Error() bool { return d.state == Error }

// --- debug/simulation accessors (spec.md §6) ---

func (d *Demodulator) State() State           { return d.state }
func (d *Demodulator) PLLPhase() float32      { return d.pll.Phase() }
func (d *Demodulator) PLLError() float32      { return d.pll.Error() }
func (d *Demodulator) PLLStep() float32       { return d.pll.Step() }
func (d *Demodulator) DecisionPhase() float32 { return d.decisionPhase }
func (d *Demodulator) SignalPower() float32   { return d.follower.Output() }
func (d *Demodulator) RecoveredI() float32    { return d.crf.Output().I }
func (d *Demodulator) RecoveredQ() float32    { return d.crf.Output().Q }
func (d *Demodulator) Correlation() float32   { return d.corr.Output() }
func (d *Demodulator) Decide() bool           { return d.decide }
func (d *Demodulator) AGC() float32           { return d.agcGain }
