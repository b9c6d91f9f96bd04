// File: sock/datagram.go
// Author: momentics <momentics@gmail.com>

package sock

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/netfd/api"
)

// Datagram adds the message-oriented capability to Socket. Every call is
// stateless: one call, one datagram.
type Datagram struct {
	Socket
}

// Recv receives one inbound datagram into p and reports its source. When
// the kernel truncated the datagram to fit p, the received prefix and
// source are returned together with api.ErrTruncated; truncation is never
// hidden.
func (d *Datagram) Recv(p []byte) (int, api.Addr, error) {
	d.RegisterRead()
	var (
		n     int
		flags int
		from  unix.Sockaddr
	)
	err := d.Syscall("recvmsg", func(raw int) error {
		var rerr error
		n, _, flags, from, rerr = unix.Recvmsg(raw, p, nil, 0)
		return rerr
	})
	if err != nil {
		return 0, nil, err
	}
	var addr api.Addr
	if from != nil {
		// Connected sockets may omit the source.
		addr, err = addrFromSockaddr(from)
		if err != nil {
			return n, nil, err
		}
	}
	if flags&unix.MSG_TRUNC != 0 {
		return n, addr, fmt.Errorf("%w: %d-byte buffer", api.ErrTruncated, len(p))
	}
	return n, addr, nil
}

// SendTo sends p as one datagram to an explicit destination.
func (d *Datagram) SendTo(p []byte, dest api.Addr) error {
	sa, err := sockaddrOf(dest)
	if err != nil {
		return err
	}
	d.RegisterWrite()
	return d.Syscall("sendto", func(raw int) error {
		return unix.Sendto(raw, p, 0, sa)
	})
}

// Send sends p to the connected peer. Without a prior Connect the kernel
// rejects the call; that rejection comes back as a SyscallError.
func (d *Datagram) Send(p []byte) error {
	d.RegisterWrite()
	return d.Syscall("send", func(raw int) error {
		return unix.Sendto(raw, p, 0, nil)
	})
}
