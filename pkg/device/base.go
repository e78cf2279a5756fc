package device

// Device delivers signed 32-bit PCM buffers to callback as they arrive
// and stops delivering them on Stop. Start must not block.
type Device interface {
	Start(callback func([]int32, []int32))
	Stop()
}

// BufferSize is the number of samples per channel delivered to each
// callback invocation.
const BufferSize = 512
