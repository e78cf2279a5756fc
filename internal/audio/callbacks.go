package audio

import "quadra/internal/demod"

// Playback streams a fixed PCM track out through a device.Device's
// output buffer, padding with silence once the track is exhausted.
type Playback struct {
	idx   uint
	Track []int32
}

func (p *Playback) Update(in, out []int32) {
	n := min(len(out), len(p.Track)-int(p.idx))
	i := 0
	for ; i < n; i++ {
		out[i] = p.Track[p.idx]
		p.idx++
	}
	for ; i < len(out); i++ {
		out[i] = 0
	}
}

// Reset rewinds playback to the start of Track.
func (p *Playback) Reset() {
	p.idx = 0
}

// Capture appends every input buffer it sees onto Track.
type Capture struct {
	Track []int32
}

func (c *Capture) Update(in, out []int32) {
	c.Track = append(c.Track, in...)
}

// Receiver drives a demod.Demodulator from a device's input buffer,
// one sample at a time, accumulating every symbol it decodes. The
// output buffer is left silent; the receiver never transmits.
type Receiver struct {
	Demod   *demod.Demodulator
	Symbols []byte
}

func (r *Receiver) Update(in, out []int32) {
	for _, sample := range in {
		if symbol, ok := r.Demod.Process(ToFloat32(sample)); ok {
			r.Symbols = append(r.Symbols, symbol)
		}
	}
	for i := range out {
		out[i] = 0
	}
}
