// Command simdemod drives the demodulator through pkg/device.Loopback
// instead of a real audio device: a synthesized carrier-sync tone is
// played back through Loopback's channel simulation (optionally with an
// injected noise floor, and an optional mid-stream signal cut), and
// whatever comes back out the other side is fed to demod.Demodulator
// exactly as cmd/livedemod would feed a real capture.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"quadra/internal/audio"
	"quadra/internal/demod"
	"quadra/internal/iohelpers"
	"quadra/pkg/async"
	"quadra/pkg/device"
)

func main() {
	sampleRate := flag.Int("sample-rate", 4000, "samples per second")
	symbolRate := flag.Int("symbol-rate", 500, "symbols per second")
	samples := flag.Int("samples", 60000, "number of samples to feed")
	noise := flag.Float64("noise", 0, "noise amplitude mixed into the channel, 0-1")
	cutAt := flag.Int("cut-at", -1, "sample index after which the transmitter goes silent, -1 disables")
	input := flag.String("input", "", "optional path to a recorded int32 PCM track, in place of a synthesized tone")
	dump := flag.String("dump", "", "optional path to dump recovered symbols to, as raw bytes")
	dumpTxt := flag.String("dump-txt", "", "optional path to dump recovered symbols to, one decimal value per line")
	expect := flag.String("expect", "", "optional path to a text file of expected symbols, one per line, to check the run against")
	flag.Parse()

	d, err := demod.New(*sampleRate, *symbolRate)
	if err != nil {
		fmt.Printf("Error building demodulator: %v\n", err)
		os.Exit(1)
	}

	var track []int32
	if *input != "" {
		track, err = iohelpers.ReadBinary[int32](*input)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", *input, err)
			os.Exit(1)
		}
	} else {
		track = synthesizeCarrierSync(*samples, *sampleRate / *symbolRate)
	}
	if *cutAt >= 0 && *cutAt < len(track) {
		device.Silence(track[*cutAt:])
	}

	playback := &audio.Playback{Track: track}
	receiver := &audio.Receiver{Demod: d}

	totalBuffers := (len(track) + device.BufferSize - 1) / device.BufferSize
	buffersDone := 0
	lastState := d.State()

	var finished async.Signal[struct{}]
	done := finished.Signal()

	dev := &device.Loopback{} // SampleRate 0: run the simulated channel unthrottled.
	dev.Start(func(in, out []int32) {
		before := len(receiver.Symbols)
		receiver.Update(in, out)
		for ; before < len(receiver.Symbols); before++ {
			fmt.Printf("symbol %03d: %x\n", before, receiver.Symbols[before])
		}
		if d.State() != lastState {
			fmt.Printf("%v -> %v (signal_power=%.3f agc=%.3f)\n", lastState, d.State(), d.SignalPower(), d.AGC())
			lastState = d.State()
		}

		playback.Update(nil, out)
		device.MixNoise(out, *noise)

		buffersDone++
		if buffersDone >= totalBuffers {
			finished.Notify()
		}
	})
	async.Await0(done)
	dev.Stop()

	fmt.Printf("recovered %d symbols, final state %v\n", len(receiver.Symbols), d.State())

	if *dump != "" {
		if err := iohelpers.WriteBinary(*dump, receiver.Symbols); err != nil {
			fmt.Printf("Error writing %s: %v\n", *dump, err)
			os.Exit(1)
		}
		fmt.Printf("wrote symbols to %s\n", *dump)
	}

	if *dumpTxt != "" {
		if err := iohelpers.WriteTxt(*dumpTxt, receiver.Symbols, func(b byte) int { return int(b) }); err != nil {
			fmt.Printf("Error writing %s: %v\n", *dumpTxt, err)
			os.Exit(1)
		}
		fmt.Printf("wrote symbols to %s\n", *dumpTxt)
	}

	if *expect != "" {
		checkExpectedSymbols(*expect, receiver.Symbols)
	}
}

// checkExpectedSymbols compares recovered against the symbols listed one per
// line in expectFile and reports the first mismatch, if any.
func checkExpectedSymbols(expectFile string, recovered []byte) {
	want, err := iohelpers.ReadTxt[int](expectFile)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", expectFile, err)
		os.Exit(1)
	}
	if len(want) != len(recovered) {
		fmt.Printf("expected %d symbols, recovered %d\n", len(want), len(recovered))
		return
	}
	for i, w := range want {
		if byte(w) != recovered[i] {
			fmt.Printf("mismatch at symbol %d: expected %x, recovered %x\n", i, w, recovered[i])
			return
		}
	}
	fmt.Println("all symbols matched")
}

// synthesizeCarrierSync renders n samples of the constant carrier-sync
// constellation point (-kIQAmplitude,-kIQAmplitude) as signed 32-bit PCM,
// scaled so the tone's mean absolute value is kIQAmplitude (see
// internal/demod/demod_test.go's basebandSample for the derivation).
func synthesizeCarrierSync(n, symbolDuration int) []int32 {
	const iqAmplitude = 0.75
	transmitScale := math.Pi / (2 * math.Sqrt2)

	track := make([]int32, n)
	for i := range track {
		theta := 2 * math.Pi * float64(i) / float64(symbolDuration)
		sample := transmitScale * iqAmplitude * (-math.Cos(theta) + math.Sin(theta))
		track[i] = audio.FromFloat32(float32(sample))
	}
	return track
}
