// File: pool/default.go
// Author: momentics <momentics@gmail.com>

package pool

import "sync"

// ChunkSize matches the per-call transfer cap of the descriptor layer.
const ChunkSize = 16384

var (
	defaultOnce sync.Once
	defaultPool *BytePool
)

// Default returns a process-wide pool of chunk-sized buffers so all
// components reuse the same storage instead of fragmenting allocations.
func Default() *BytePool {
	defaultOnce.Do(func() {
		defaultPool = NewBytePool(ChunkSize)
	})
	return defaultPool
}
