// File: sock/addr_linux.go
//go:build linux

// Author: momentics <momentics@gmail.com>

package sock

import "golang.org/x/sys/unix"

const afPacket = unix.AF_PACKET

// addrFromSockaddrOS covers the families only Linux produces.
func addrFromSockaddrOS(sa unix.Sockaddr) (*Addr, bool) {
	if _, ok := sa.(*unix.SockaddrLinklayer); ok {
		return &Addr{family: unix.AF_PACKET, sa: sa}, true
	}
	return nil, false
}

// Ifindex returns the interface index of a packet-family endpoint, or 0.
func (a *Addr) Ifindex() int {
	if sa, ok := a.sa.(*unix.SockaddrLinklayer); ok {
		return sa.Ifindex
	}
	return 0
}
