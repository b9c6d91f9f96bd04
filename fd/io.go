// File: fd/io.go
// Author: momentics <momentics@gmail.com>
//
// Bounded read/write primitives. Every call is one syscall capped at one
// chunk; callers needing full transfers loop (or use WriteAll).

package fd

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/netfd/pool"
)

// ChunkSize caps the bytes moved by a single Read or Write call.
const ChunkSize = pool.ChunkSize

// Read reads up to one chunk into p. A successful zero-byte read of a
// non-empty buffer marks end of stream. The read counter advances on every
// attempt, whatever the outcome.
func (f *FD) Read(p []byte) (int, error) {
	f.h.readCount++
	if err := f.h.guard("read"); err != nil {
		return 0, err
	}
	if len(p) > ChunkSize {
		p = p[:ChunkSize]
	}
	n, err := unix.Read(f.h.fd, p)
	if err != nil {
		return 0, f.h.check("read", err)
	}
	if n == 0 && len(p) > 0 {
		f.h.eof = true
	}
	return n, nil
}

// ReadBuffers scatter-reads into an ordered sequence of buffers with one
// readv(2) call. Same EOF and accounting contract as Read.
func (f *FD) ReadBuffers(bufs [][]byte) (int, error) {
	f.h.readCount++
	if err := f.h.guard("readv"); err != nil {
		return 0, err
	}
	n, err := unix.Readv(f.h.fd, bufs)
	if err != nil {
		return 0, f.h.check("readv", err)
	}
	if n == 0 && totalLen(bufs) > 0 {
		f.h.eof = true
	}
	return n, nil
}

// ReadString reads one chunk and returns it as a string. The intermediate
// buffer comes from the shared pool.
func (f *FD) ReadString() (string, error) {
	buf := pool.Default().GetBuffer()
	defer pool.Default().PutBuffer(buf)
	n, err := f.Read(buf)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// Write writes up to one chunk from p and returns the count actually
// accepted by the kernel. A short count is not an error; would-block on a
// non-blocking handle surfaces as a SyscallError the caller can classify
// with api.IsWouldBlock.
func (f *FD) Write(p []byte) (int, error) {
	f.h.writeCount++
	if err := f.h.guard("write"); err != nil {
		return 0, err
	}
	if len(p) > ChunkSize {
		p = p[:ChunkSize]
	}
	n, err := unix.Write(f.h.fd, p)
	if err != nil {
		return 0, f.h.check("write", err)
	}
	return n, nil
}

// WriteBuffers gather-writes an ordered sequence of spans with one
// writev(2) call and returns the total bytes accepted.
func (f *FD) WriteBuffers(bufs [][]byte) (int, error) {
	f.h.writeCount++
	if err := f.h.guard("writev"); err != nil {
		return 0, err
	}
	n, err := unix.Writev(f.h.fd, bufs)
	if err != nil {
		return 0, f.h.check("writev", err)
	}
	return n, nil
}

// WriteAll loops Write until all of p is accepted. Each iteration is one
// counted write attempt.
func (f *FD) WriteAll(p []byte) error {
	for len(p) > 0 {
		n, err := f.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// SetBlocking switches the descriptor between blocking and non-blocking
// mode. The cached state updates only when the kernel accepted the change.
func (f *FD) SetBlocking(blocking bool) error {
	err := f.Syscall("fcntl", func(raw int) error {
		return unix.SetNonblock(raw, !blocking)
	})
	if err != nil {
		return err
	}
	f.h.nonBlocking = !blocking
	return nil
}

// Size queries the kernel for the total size of the underlying object.
// Fails for descriptors without a meaningful size, such as sockets.
func (f *FD) Size() (int64, error) {
	var st unix.Stat_t
	err := f.Syscall("fstat", func(raw int) error {
		return unix.Fstat(raw, &st)
	})
	if err != nil {
		return 0, err
	}
	return st.Size, nil
}

func totalLen(bufs [][]byte) int {
	total := 0
	for _, b := range bufs {
		total += len(b)
	}
	return total
}
