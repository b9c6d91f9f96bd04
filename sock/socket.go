// File: sock/socket.go
// Author: momentics <momentics@gmail.com>

package sock

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/netfd/api"
	"github.com/momentics/netfd/fd"
)

// Socket is the transport capability shared by every concrete socket type:
// endpoint management over a descriptor the kernel knows is a socket. It
// owns no state of its own; lifetime and bookkeeping live in the embedded
// guard.
type Socket struct {
	*fd.FD
}

// newSocket creates a fresh kernel socket of the given family, type and
// protocol and wraps it in a new guard.
func newSocket(domain, typ, proto int) (Socket, error) {
	raw, err := unix.Socket(domain, typ, proto)
	if err != nil {
		return Socket{}, api.NewSyscallError("socket", err)
	}
	guard, err := fd.New(raw)
	if err != nil {
		unix.Close(raw)
		return Socket{}, err
	}
	return Socket{FD: guard}, nil
}

// wrapSocket adopts an already-open descriptor, asserting it carries socket
// semantics. Used for descriptors returned by accept(2).
func wrapSocket(guard *fd.FD) Socket {
	return Socket{FD: guard}
}

// sockaddrOf recovers the kernel representation from a capability-level
// endpoint. Only endpoints built by this package carry one.
func sockaddrOf(addr api.Addr) (unix.Sockaddr, error) {
	a, ok := addr.(*Addr)
	if !ok || a == nil {
		return nil, fmt.Errorf("%w: foreign address type %T", api.ErrNotSupported, addr)
	}
	return a.sockaddr(), nil
}

// Bind assigns the local endpoint.
func (s *Socket) Bind(addr api.Addr) error {
	sa, err := sockaddrOf(addr)
	if err != nil {
		return err
	}
	return s.Syscall("bind", func(raw int) error {
		return unix.Bind(raw, sa)
	})
}

// Connect sets the peer endpoint. On a non-blocking socket an in-progress
// connect is success, not failure; its eventual outcome is read with
// CheckError.
func (s *Socket) Connect(addr api.Addr) error {
	sa, err := sockaddrOf(addr)
	if err != nil {
		return err
	}
	return s.Syscall("connect", func(raw int) error {
		cerr := unix.Connect(raw, sa)
		if cerr == unix.EINPROGRESS {
			return nil
		}
		return cerr
	})
}

// Shutdown closes one or both directions (unix.SHUT_RD, SHUT_WR,
// SHUT_RDWR) without touching the shared handle's open/close bookkeeping.
func (s *Socket) Shutdown(how int) error {
	return s.Syscall("shutdown", func(raw int) error {
		return unix.Shutdown(raw, how)
	})
}

// getAddress backs the two endpoint queries; op tags the error for
// diagnostics.
func (s *Socket) getAddress(op string, query func(raw int) (unix.Sockaddr, error)) (api.Addr, error) {
	var sa unix.Sockaddr
	err := s.Syscall(op, func(raw int) error {
		var qerr error
		sa, qerr = query(raw)
		return qerr
	})
	if err != nil {
		return nil, err
	}
	a, err := addrFromSockaddr(sa)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// LocalAddr returns the bound local endpoint.
func (s *Socket) LocalAddr() (api.Addr, error) {
	return s.getAddress("getsockname", unix.Getsockname)
}

// PeerAddr returns the connected peer endpoint.
func (s *Socket) PeerAddr() (api.Addr, error) {
	a, err := s.getAddress("getpeername", unix.Getpeername)
	if err != nil {
		if se := api.AsSyscallError(err); se != nil && errors.Is(se.Errno, unix.ENOTCONN) {
			return nil, fmt.Errorf("%w: %v", api.ErrNotConnected, err)
		}
		return nil, err
	}
	return a, nil
}

// SetReuseaddr allows rebinding a recently used local address.
func (s *Socket) SetReuseaddr() error {
	return s.SetsockoptInt(unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
}

// CheckError reads and clears the pending socket error. Non-nil after a
// non-blocking Connect resolved unsuccessfully.
func (s *Socket) CheckError() error {
	var pending int
	err := s.Syscall("getsockopt", func(raw int) error {
		var gerr error
		pending, gerr = unix.GetsockoptInt(raw, unix.SOL_SOCKET, unix.SO_ERROR)
		return gerr
	})
	if err != nil {
		return err
	}
	if pending != 0 {
		return &api.SyscallError{Op: "SO_ERROR", Errno: unix.Errno(pending)}
	}
	return nil
}

// GetsockoptInt reads an integer-valued socket option.
func (s *Socket) GetsockoptInt(level, opt int) (int, error) {
	var value int
	err := s.Syscall("getsockopt", func(raw int) error {
		var gerr error
		value, gerr = unix.GetsockoptInt(raw, level, opt)
		return gerr
	})
	return value, err
}

// SetsockoptInt sets an integer-valued socket option.
func (s *Socket) SetsockoptInt(level, opt, value int) error {
	return s.Syscall("setsockopt", func(raw int) error {
		return unix.SetsockoptInt(raw, level, opt, value)
	})
}

// SetsockoptString sets a byte-string-valued option, for options with no
// fixed-size typed representation.
func (s *Socket) SetsockoptString(level, opt int, value string) error {
	return s.Syscall("setsockopt", func(raw int) error {
		return unix.SetsockoptString(raw, level, opt, value)
	})
}
