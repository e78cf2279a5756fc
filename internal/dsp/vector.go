// Package dsp holds the small numeric building blocks shared by the
// demodulator core: the complex baseband vector, one-pole filters, the
// sliding window, and the sine/cosine/clamp/lerp helpers. Nothing here
// allocates after construction.
package dsp

// Vector is the complex baseband sample (i, q). The core never needs
// general complex multiplication, only scaling, addition, conjugation
// (via Cos/-Sin), and the cross product used by the PLL error detector.
type Vector struct {
	I, Q float32
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.I + o.I, v.Q + o.Q}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.I - o.I, v.Q - o.Q}
}

func (v Vector) Scale(s float32) Vector {
	return Vector{v.I * s, v.Q * s}
}

// Cross computes v × o = v.I*o.Q - o.I*v.Q, the quantity the PLL's error
// detector and the raised-cosine phase-error gate both feed on.
func (v Vector) Cross(o Vector) float32 {
	return v.I*o.Q - o.I*v.Q
}

// Power returns |v|^2, used by the AGC error term.
func (v Vector) Power() float32 {
	return v.I*v.I + v.Q*v.Q
}

// VectorLerp interpolates componentwise between a and b by t.
func VectorLerp(a, b Vector, t float32) Vector {
	return Vector{Lerp(a.I, b.I, t), Lerp(a.Q, b.Q, t)}
}
