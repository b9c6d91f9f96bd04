// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for netfd.

package api

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Common errors used across the library.
var (
	ErrInvalidDescriptor = fmt.Errorf("invalid descriptor")
	ErrNotSupported      = fmt.Errorf("operation not supported")
	ErrNotConnected      = fmt.Errorf("socket is not connected")
	ErrClosed            = fmt.Errorf("descriptor is closed")
	ErrTruncated         = fmt.Errorf("datagram truncated")
)

// SyscallError reports a failed kernel call. Op names the attempted
// operation ("read", "bind", ...) and Errno carries the platform error.
type SyscallError struct {
	Op    string
	Errno unix.Errno
}

// Error implements the error interface.
func (e *SyscallError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Errno.Error())
}

// Unwrap exposes the underlying errno for errors.Is/As matching.
func (e *SyscallError) Unwrap() error {
	return e.Errno
}

// NewSyscallError wraps err into a SyscallError tagged with op. Errors
// produced by golang.org/x/sys are unix.Errno values; anything else is
// mapped to EIO so the taxonomy stays closed.
func NewSyscallError(op string, err error) *SyscallError {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		errno = unix.EIO
	}
	return &SyscallError{Op: op, Errno: errno}
}

// AsSyscallError extracts a SyscallError from an error chain, or nil.
func AsSyscallError(err error) *SyscallError {
	var se *SyscallError
	if errors.As(err, &se) {
		return se
	}
	return nil
}

// IsWouldBlock reports whether err denotes a non-blocking operation that
// found no data or buffer space. Retry policy belongs to the caller.
func IsWouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}
