package device

import "golang.org/x/exp/rand"

func cleari32(a []int32) {
	for i := range a {
		a[i] = 0
	}
}

// randi32 fills a with full-scale noise.
func randi32(a []int32) {
	for i := range a {
		a[i] = rand.Int31()
	}
}

// sumi32 adds a and b sample-wise into c, saturating at the int32
// range instead of wrapping.
func sumi32(a, b, c []int32) {
	for i := range a {
		sum := int64(a[i]) + int64(b[i])
		if sum > 0x7fffffff {
			sum = 0x7fffffff
		} else if sum < -0x80000000 {
			sum = -0x80000000
		}
		c[i] = int32(sum)
	}
}

func alloci32(n int) []int32 {
	return make([]int32, n)
}

// Silence zeros buf in place, standing in for a transmitter going dead
// mid-stream.
func Silence(buf []int32) {
	cleari32(buf)
}

// MixNoise adds full-scale random noise, scaled by amplitude (0-1), into
// dst in place. amplitude<=0 leaves dst untouched.
func MixNoise(dst []int32, amplitude float64) {
	if amplitude <= 0 {
		return
	}
	noise := alloci32(len(dst))
	randi32(noise)
	for i := range noise {
		noise[i] = int32(float64(noise[i]) * amplitude)
	}
	sumi32(dst, noise, dst)
}
