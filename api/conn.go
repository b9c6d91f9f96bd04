// File: api/conn.go
// Author: momentics <momentics@gmail.com>
//
// Byte-stream view over an owned kernel descriptor.

package api

// Conn abstracts a full-duplex byte channel backed by an OS descriptor.
type Conn interface {
	// Read reads into a preallocated buffer.
	Read(p []byte) (n int, err error)

	// Write writes buffer contents; a short count is a valid result the
	// caller must handle by looping.
	Write(p []byte) (n int, err error)

	// Close releases the underlying descriptor for every sharer.
	Close() error

	// RawFD returns the underlying OS-level file descriptor.
	RawFD() int
}
