package audio

import (
	"math"
	"testing"
)

func TestRoundTripNearUnity(t *testing.T) {
	for _, f := range []float32{0, 0.5, -0.5, 0.999, -0.999} {
		pcm := FromFloat32(f)
		back := ToFloat32(pcm)
		if diff := back - f; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("round trip of %v drifted to %v", f, back)
		}
	}
}

func TestFromFloat32Saturates(t *testing.T) {
	if FromFloat32(10) != math.MaxInt32 {
		t.Errorf("expected saturation at MaxInt32, got %d", FromFloat32(10))
	}
	if FromFloat32(-10) != math.MinInt32 {
		t.Errorf("expected saturation at MinInt32, got %d", FromFloat32(-10))
	}
}
