// Package audio bridges the signed 32-bit PCM buffers pkg/device
// delivers to the float32 sample stream internal/demod consumes, and
// supplies the playback/capture callbacks cmd/simdemod and
// cmd/livedemod wire into a device.Device.
package audio

import "math"

// ToFloat32 converts one full-scale int32 PCM sample to a float32 in
// roughly [-1, 1].
func ToFloat32(sample int32) float32 {
	return float32(sample) / math.MaxInt32
}

// FromFloat32 converts a float32 sample in roughly [-1, 1] back to
// full-scale int32 PCM, saturating instead of wrapping on overflow.
func FromFloat32(sample float32) int32 {
	scaled := float64(sample) * math.MaxInt32
	if scaled > math.MaxInt32 {
		return math.MaxInt32
	}
	if scaled < math.MinInt32 {
		return math.MinInt32
	}
	return int32(scaled)
}
