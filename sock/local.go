// File: sock/local.go
// Author: momentics <momentics@gmail.com>
//
// Local-domain (AF_UNIX) socket types for same-host transfer.

package sock

import "golang.org/x/sys/unix"

// LocalStream is a connection-oriented local-domain socket with the
// listener capability.
type LocalStream struct {
	Socket
}

// NewLocalStream creates an unbound local-domain stream socket.
func NewLocalStream() (*LocalStream, error) {
	s, err := newSocket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, err
	}
	return &LocalStream{Socket: s}, nil
}

// Listen switches a bound socket into listening mode.
func (l *LocalStream) Listen(backlog int) error {
	return l.Syscall("listen", func(raw int) error {
		return unix.Listen(raw, backlog)
	})
}

// Accept takes one pending connection off the queue over a fresh handle.
func (l *LocalStream) Accept() (*LocalStream, error) {
	guard, err := acceptFD(&l.Socket)
	if err != nil {
		return nil, err
	}
	return &LocalStream{Socket: wrapSocket(guard)}, nil
}

// LocalDatagram is a connectionless local-domain datagram socket.
type LocalDatagram struct {
	Datagram
}

// NewLocalDatagram creates an unbound local-domain datagram socket.
func NewLocalDatagram() (*LocalDatagram, error) {
	s, err := newSocket(unix.AF_UNIX, unix.SOCK_DGRAM, 0)
	if err != nil {
		return nil, err
	}
	return &LocalDatagram{Datagram{Socket: s}}, nil
}
