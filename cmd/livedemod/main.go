// Command livedemod runs the 16-QAM demodulator against a live audio
// input device, printing every recovered symbol as it arrives and
// dumping the full symbol stream to a file on exit.
package main

import (
	"fmt"
	"os"
	"time"

	"quadra/cmd/livedemod/config"
	"quadra/internal/iohelpers"
	"quadra/pkg/async"
)

func main() {
	cfg, err := config.Load("config.yml")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Config: %+v\n", cfg)

	receiver, err := cfg.NewReceiver()
	if err != nil {
		fmt.Printf("Error building demodulator: %v\n", err)
		os.Exit(1)
	}

	dev := cfg.NewDevice()
	emitted := 0

	dev.Start(func(in, out []int32) {
		before := len(receiver.Symbols)
		receiver.Update(in, out)
		for ; before < len(receiver.Symbols); before++ {
			fmt.Printf("symbol %03d: %x\n", emitted, receiver.Symbols[before])
			emitted++
		}
		if receiver.Demod.Error() {
			fmt.Println("signal lost, resetting demodulator")
			receiver.Demod.Reset()
		}
	})

	fmt.Println("Press Enter to stop capturing")
	<-async.EnterKey()
	dev.Stop()

	outputFile := fmt.Sprintf("symbols-%s.bin", time.Now().Format("20060102-150405"))
	if err := iohelpers.WriteBinary(outputFile, receiver.Symbols); err != nil {
		fmt.Printf("Error writing %s: %v\n", outputFile, err)
		return
	}
	fmt.Printf("Wrote %d symbols to %s\n", len(receiver.Symbols), outputFile)
}
