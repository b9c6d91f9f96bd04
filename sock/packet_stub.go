// File: sock/packet_stub.go
//go:build !linux

// Author: momentics <momentics@gmail.com>

package sock

import (
	"fmt"

	"github.com/momentics/netfd/api"
)

// Packet is only backed by a kernel facility on Linux.
type Packet struct {
	Datagram
}

// NewPacket fails loudly where AF_PACKET does not exist.
func NewPacket(typ, proto int) (*Packet, error) {
	return nil, fmt.Errorf("%w: AF_PACKET sockets", api.ErrNotSupported)
}

// SetPromiscuous fails loudly where AF_PACKET does not exist.
func (p *Packet) SetPromiscuous() error {
	return fmt.Errorf("%w: promiscuous mode", api.ErrNotSupported)
}
