package device

import "time"

// Loopback feeds each call's output buffer back in as the next call's
// input buffer, standing in for a sound card in cmd/simdemod so the
// receive chain can be driven without real hardware.
type Loopback struct {
	SampleRate float64 // callbacks per second, each carrying BufferSize samples; 0 means no limit
	done       chan struct{}
}

func (d *Loopback) Start(callback func([]int32, []int32)) {
	d.done = make(chan struct{})
	go func() {
		var buf = make([][]int32, 2)
		buf[0] = alloci32(BufferSize)
		buf[1] = alloci32(BufferSize)

		swap := true
		update := func() {
			if swap {
				callback(buf[0], buf[1])
			} else {
				callback(buf[1], buf[0])
			}
			swap = !swap
		}

		if d.SampleRate == 0 {
			for {
				select {
				case <-d.done:
					return
				default:
					update()
				}
			}
		} else {
			ticker := time.NewTicker(time.Second / time.Duration(d.SampleRate))
			for {
				select {
				case <-d.done:
					return
				case <-ticker.C:
					update()
				}
			}
		}
	}()
}

// Stop blocks until the loop goroutine has taken the request, so no
// callback runs after it returns.
func (d *Loopback) Stop() {
	d.done <- struct{}{}
}
