// Package crf implements the carrier-rejection filter: two cascaded
// biquad sections applied to the complex baseband signal to remove the
// image at twice the carrier frequency, after mixing down. Ported from
// original_source/inc/carrier_rejection_filter.h.
package crf

import "quadra/internal/dsp"

const numSections = 2

// section holds one biquad's running state: the last three inputs and
// last two outputs, one instance per cascaded stage, operating directly
// on complex Vector samples.
type section struct {
	coeffs Section
	x      [3]dsp.Vector
	y      [2]dsp.Vector
}

func (s *section) init() {
	s.x = [3]dsp.Vector{}
	s.y = [2]dsp.Vector{}
}

// process runs one Direct Form I step: shift x, compute
// y = b0*x0 + b1*x1 + b2*x2 - a0*y0 - a1*y1, shift y, return y.
func (s *section) process(in dsp.Vector) dsp.Vector {
	s.x[2] = s.x[1]
	s.x[1] = s.x[0]
	s.x[0] = in

	out := s.x[0].Scale(s.coeffs.B0).
		Add(s.x[1].Scale(s.coeffs.B1)).
		Add(s.x[2].Scale(s.coeffs.B2)).
		Sub(s.y[0].Scale(s.coeffs.A0)).
		Sub(s.y[1].Scale(s.coeffs.A1))

	s.y[1] = s.y[0]
	s.y[0] = out
	return out
}

// Filter is the two-section cascaded biquad. The coefficient table is
// selected once, at construction, by kSymbolDuration.
type Filter struct {
	sections [numSections]section
}

// New builds a Filter for the given kSymbolDuration (samples per
// symbol). It returns ok=false for any duration without a compiled
// coefficient table — the unsupported-configuration case spec.md §4.4
// requires to be rejected, realized here as a construction-time check
// rather than a compile error.
func New(symbolDuration int) (f *Filter, ok bool) {
	table, ok := tableFor(symbolDuration)
	if !ok {
		return nil, false
	}
	f = &Filter{}
	for i := range f.sections {
		f.sections[i].coeffs = table[i]
	}
	return f, true
}

// Init zeros all section states.
func (f *Filter) Init() {
	for i := range f.sections {
		f.sections[i].init()
	}
}

// Process runs one complex sample through both cascaded sections in
// order and returns the second section's output.
func (f *Filter) Process(in dsp.Vector) dsp.Vector {
	for i := range f.sections {
		in = f.sections[i].process(in)
	}
	return f.Output()
}

// Output returns the most recent output of the final section, without
// advancing any state.
func (f *Filter) Output() dsp.Vector {
	return f.sections[numSections-1].y[0]
}
