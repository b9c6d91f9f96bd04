// File: sock/packet_linux.go
//go:build linux

// Author: momentics <momentics@gmail.com>

package sock

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/netfd/api"
)

// Packet is a raw link-layer datagram socket (AF_PACKET). Requires
// CAP_NET_RAW.
type Packet struct {
	Datagram
}

// NewPacket creates a packet socket of the given type (unix.SOCK_RAW or
// unix.SOCK_DGRAM) and protocol. The protocol is an ETH_P_* value in
// network byte order, as socket(2) expects for this family.
func NewPacket(typ, proto int) (*Packet, error) {
	s, err := newSocket(unix.AF_PACKET, typ, proto)
	if err != nil {
		return nil, err
	}
	return &Packet{Datagram{Socket: s}}, nil
}

// SetPromiscuous puts the bound interface into promiscuous mode for this
// socket, so it sees traffic addressed elsewhere. The socket must be bound
// to an interface first; the bound index comes back from the kernel.
func (p *Packet) SetPromiscuous() error {
	local, err := p.LocalAddr()
	if err != nil {
		return err
	}
	a, ok := local.(*Addr)
	if !ok || a.Ifindex() == 0 {
		return fmt.Errorf("%w: socket is not bound to an interface", api.ErrNotSupported)
	}
	mreq := unix.PacketMreq{
		Ifindex: int32(a.Ifindex()),
		Type:    unix.PACKET_MR_PROMISC,
	}
	return p.Syscall("setsockopt", func(raw int) error {
		return unix.SetsockoptPacketMreq(raw, unix.SOL_PACKET, unix.PACKET_ADD_MEMBERSHIP, &mreq)
	})
}
