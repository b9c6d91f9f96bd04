// File: sock/addr_other.go
//go:build !linux

// Author: momentics <momentics@gmail.com>

package sock

import "golang.org/x/sys/unix"

// No packet family off Linux; -1 never matches a kernel constant.
const afPacket = -1

func addrFromSockaddrOS(unix.Sockaddr) (*Addr, bool) {
	return nil, false
}

// Ifindex returns 0: no packet-family endpoints on this platform.
func (a *Addr) Ifindex() int { return 0 }
