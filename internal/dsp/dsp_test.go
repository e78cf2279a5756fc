package dsp

import (
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		in       float32
		expected float32
	}{
		{"already in range", 0.3, 0.3},
		{"negative", -0.25, 0.75},
		{"exactly one", 1.0, 0.0},
		{"greater than one", 1.75, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.in); math.Abs(float64(got-tt.expected)) > 1e-6 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		name     string
		x        float32
		lo, hi   int32
		expected int32
	}{
		{"below range truncates then clamps", -0.5, 0, 3, 0},
		{"above range", 4.9, 0, 3, 3},
		{"truncates toward zero", 2.9, 0, 3, 2},
		{"in range", 1.0, 0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampInt(tt.x, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestSineCosineAgainstMath(t *testing.T) {
	for i := 0; i < 100; i++ {
		phase := float32(i) / 100
		wantSin := float32(math.Sin(2 * math.Pi * float64(phase)))
		wantCos := float32(math.Cos(2 * math.Pi * float64(phase)))
		if diff := Abs(Sine(phase) - wantSin); diff > 0.01 {
			t.Errorf("Sine(%v): got %v, want %v (diff %v)", phase, Sine(phase), wantSin, diff)
		}
		if diff := Abs(Cosine(phase) - wantCos); diff > 0.01 {
			t.Errorf("Cosine(%v): got %v, want %v (diff %v)", phase, Cosine(phase), wantCos, diff)
		}
	}
}

func TestWindowOrdering(t *testing.T) {
	w := NewWindow[float32](4)
	for i := 1; i <= 4; i++ {
		w.Write(float32(i))
	}
	// newest write (4) at index 0, oldest (1) at index 3
	expected := []float32{4, 3, 2, 1}
	for k, want := range expected {
		if got := w.At(k); got != want {
			t.Errorf("At(%d): got %v, want %v", k, got, want)
		}
	}
}

func TestWindowSum(t *testing.T) {
	w := NewWindow[float32](3)
	w.Write(1)
	w.Write(2)
	w.Write(3)
	if got := Sum(w); got != 6 {
		t.Errorf("expected 6, got %v", got)
	}
}

func TestOnePoleLowPassTracksConstant(t *testing.T) {
	var lp LowPass
	lp.Init(0.1)
	var y float32
	for i := 0; i < 200; i++ {
		y = lp.Process(1.0)
	}
	if diff := Abs(y - 1.0); diff > 0.01 {
		t.Errorf("expected convergence near 1.0, got %v", y)
	}
}

func TestOnePoleHighPassRemovesDC(t *testing.T) {
	var hp HighPass
	hp.Init(0.1)
	var y float32
	for i := 0; i < 500; i++ {
		y = hp.Process(1.0)
	}
	if diff := Abs(y); diff > 0.01 {
		t.Errorf("expected DC to be removed, got %v", y)
	}
}
