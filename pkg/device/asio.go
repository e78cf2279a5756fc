//go:build windows

// Package device abstracts the sound card the live demodulator reads
// from: a single selected input channel delivered as signed 32-bit PCM,
// one buffer at a time, with no notion of symbols or frames.
package device

import "github.com/xsjk/go-asio"

// ASIODevice drives one ASIO-capable sound card, exposing a single
// input and output channel pair. The input channel feeds
// cmd/livedemod's sample loop; the output channel is unused by the
// receiver but kept so the driver can run full-duplex.
type ASIODevice struct {
	DeviceName string
	SampleRate float64
	InChannel  int
	OutChannel int
	device     asio.Device
}

func (a *ASIODevice) Start(callback func([]int32, []int32)) {
	a.device.Load(a.DeviceName)
	a.device.SetSampleRate(a.SampleRate)
	a.device.Open()
	a.device.Start(func(in, out [][]int32) {
		callback(in[a.InChannel], out[a.OutChannel])
	})
}

func (a *ASIODevice) Stop() {
	a.device.Stop()
	a.device.Close()
	a.device.Unload()
}
