// Package async holds the small set of goroutine/channel helpers the
// command-line programs use to wait on a stop-on-keypress watcher
// (cmd/livedemod) or on the simulated capture loop (cmd/simdemod).
package async

// Await0 blocks until a is closed, discarding the zero value.
func Await0(a <-chan struct{}) {
	<-a
}
