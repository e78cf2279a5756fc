package audio

import (
	"testing"

	"quadra/internal/demod"
)

func TestPlaybackPadsWithSilenceAfterTrack(t *testing.T) {
	p := &Playback{Track: []int32{1, 2, 3}}
	out := make([]int32, 5)
	p.Update(nil, out)

	want := []int32{1, 2, 3, 0, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestPlaybackResetRewinds(t *testing.T) {
	p := &Playback{Track: []int32{9, 9}}
	out := make([]int32, 2)
	p.Update(nil, out)
	p.Reset()
	out2 := make([]int32, 2)
	p.Update(nil, out2)
	if out2[0] != 9 || out2[1] != 9 {
		t.Errorf("expected Reset to replay from the start, got %v", out2)
	}
}

func TestCaptureAccumulatesBuffers(t *testing.T) {
	c := &Capture{}
	c.Update([]int32{1, 2}, nil)
	c.Update([]int32{3}, nil)
	want := []int32{1, 2, 3}
	if len(c.Track) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(c.Track))
	}
	for i := range want {
		if c.Track[i] != want[i] {
			t.Errorf("Track[%d] = %d, want %d", i, c.Track[i], want[i])
		}
	}
}

func TestReceiverNeverErrorsOnSilence(t *testing.T) {
	d, err := demod.New(4000, 500)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	r := &Receiver{Demod: d}

	in := make([]int32, 256)
	out := make([]int32, 256)
	for i := 0; i < 20; i++ {
		r.Update(in, out)
	}

	if len(r.Symbols) != 0 {
		t.Errorf("expected no symbols from silence, got %d", len(r.Symbols))
	}
	for _, s := range out {
		if s != 0 {
			t.Errorf("expected receiver to leave the output buffer silent")
			break
		}
	}
}
