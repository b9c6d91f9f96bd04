// File: fd/fd.go
// Author: momentics <momentics@gmail.com>

package fd

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/momentics/netfd/api"
)

// FD is the public guard over a shared descriptor handle. The zero value is
// unusable; construct with New or Dup. An FD is not meant to be copied —
// hand the pointer over to transfer ownership, or call Dup to share it
// deliberately.
type FD struct {
	h        *handle
	released atomic.Bool
}

// New takes ownership of an already-obtained kernel descriptor.
func New(raw int) (*FD, error) {
	if raw < 0 {
		return nil, fmt.Errorf("%w: %d", api.ErrInvalidDescriptor, raw)
	}
	return newGuard(newHandle(raw)), nil
}

func newGuard(h *handle) *FD {
	f := &FD{h: h}
	// Collected guards still count as released; the finalizer is the
	// backstop for callers that never reach Release.
	runtime.SetFinalizer(f, (*FD).Release)
	return f
}

// Dup returns a second guard over the same handle. No kernel-level dup(2)
// is performed: both guards see one open-file state, and the descriptor
// stays open until the last guard releases or one of them calls Close.
func (f *FD) Dup() *FD {
	f.h.refs.Add(1)
	return newGuard(f.h)
}

// Release drops this guard's reference. Idempotent per guard; the handle
// closes when the last reference goes. Errors on that final close are
// reported through the diag sink only.
func (f *FD) Release() {
	if f.released.Swap(true) {
		return
	}
	runtime.SetFinalizer(f, nil)
	f.h.release()
}

// Close closes the shared handle now, for this guard and every sibling.
// Safe to call repeatedly; only the first call issues the syscall.
func (f *FD) Close() error {
	return f.h.close()
}

// Syscall runs fn against the raw descriptor through the closed-state
// guard and error chokepoint. Capability layers in sock/ build their
// operations on this so that no syscall can ever hit a released number.
func (f *FD) Syscall(op string, fn func(raw int) error) error {
	if err := f.h.guard(op); err != nil {
		return err
	}
	return f.h.check(op, fn(f.h.fd))
}

// RegisterRead counts one attempted read issued by a capability layer.
func (f *FD) RegisterRead() { f.h.readCount++ }

// RegisterWrite counts one attempted write issued by a capability layer.
func (f *FD) RegisterWrite() { f.h.writeCount++ }

// RawFD returns the descriptor number. Only meaningful while not closed.
func (f *FD) RawFD() int { return f.h.fd }

// EOF reports whether a read has observed end of stream.
func (f *FD) EOF() bool { return f.h.eof }

// Closed reports whether the shared handle has been closed.
func (f *FD) Closed() bool { return f.h.closed }

// NonBlocking reports the cached non-blocking state.
func (f *FD) NonBlocking() bool { return f.h.nonBlocking }

// ReadCount returns the number of attempted reads on the shared handle.
func (f *FD) ReadCount() uint64 { return f.h.readCount }

// WriteCount returns the number of attempted writes on the shared handle.
func (f *FD) WriteCount() uint64 { return f.h.writeCount }
