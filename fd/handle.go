// File: fd/handle.go
// Author: momentics <momentics@gmail.com>

package fd

import (
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/momentics/netfd/api"
	"github.com/momentics/netfd/diag"
)

// handle owns one kernel descriptor and its bookkeeping. All guards created
// from a common origin share a single handle; refs counts the live guards.
type handle struct {
	fd          int // immutable once created
	refs        atomic.Int64
	closed      bool
	eof         bool
	nonBlocking bool
	readCount   uint64
	writeCount  uint64
}

func newHandle(raw int) *handle {
	h := &handle{fd: raw}
	h.refs.Store(1)
	return h
}

// guard refuses the operation when the descriptor is already closed,
// without touching the kernel. The raw number may have been reassigned to
// an unrelated descriptor by then.
func (h *handle) guard(op string) error {
	if h.closed {
		return &api.SyscallError{Op: op, Errno: unix.EBADF}
	}
	return nil
}

// check is the single chokepoint wrapping kernel results into the error
// taxonomy.
func (h *handle) check(op string, err error) error {
	if err != nil {
		return api.NewSyscallError(op, err)
	}
	return nil
}

// close issues close(2) at most once, ever. The closed flag flips before
// the result is inspected: even when the kernel reports a failure the raw
// number is considered released and is never used again.
func (h *handle) close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	return h.check("close", unix.Close(h.fd))
}

// release drops one reference; the last one closes. Failures here have no
// caller to land on and go to the diagnostic sink instead.
func (h *handle) release() {
	if h.refs.Add(-1) > 0 {
		return
	}
	if err := h.close(); err != nil {
		diag.Debugf("releasing fd %d: %v", h.fd, err)
	}
}
