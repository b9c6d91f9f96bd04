// File: sock/tcp.go
// Author: momentics <momentics@gmail.com>

package sock

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/netfd/fd"
)

// DefaultBacklog bounds the pending-connection queue when the caller has
// no opinion.
const DefaultBacklog = 16

// TCP is a connection-oriented IPv4 socket with the listener capability.
type TCP struct {
	Socket
}

// NewTCP creates an unbound, unconnected TCP socket.
func NewTCP() (*TCP, error) {
	s, err := newSocket(unix.AF_INET, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return nil, err
	}
	return &TCP{Socket: s}, nil
}

// Listen switches a bound socket into listening mode. Listening on a
// socket in the wrong state is a kernel-level rejection, not a local one.
func (t *TCP) Listen(backlog int) error {
	return t.Syscall("listen", func(raw int) error {
		return unix.Listen(raw, backlog)
	})
}

// Accept takes one pending connection off the queue and wraps it over a
// fresh handle, never sharing the listener's. On a non-blocking listener
// an empty queue reports would-block.
func (t *TCP) Accept() (*TCP, error) {
	guard, err := acceptFD(&t.Socket)
	if err != nil {
		return nil, err
	}
	return &TCP{Socket: wrapSocket(guard)}, nil
}

// acceptFD is the family-agnostic accept(2) path shared by the stream
// listeners.
func acceptFD(s *Socket) (*fd.FD, error) {
	var raw int
	err := s.Syscall("accept", func(lfd int) error {
		var aerr error
		raw, _, aerr = unix.Accept(lfd)
		return aerr
	})
	if err != nil {
		return nil, err
	}
	guard, err := fd.New(raw)
	if err != nil {
		unix.Close(raw)
		return nil, err
	}
	return guard, nil
}
