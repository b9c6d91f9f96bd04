// File: sock/udp.go
// Author: momentics <momentics@gmail.com>

package sock

import "golang.org/x/sys/unix"

// UDP is a connectionless IPv4 datagram socket.
type UDP struct {
	Datagram
}

// NewUDP creates an unbound, unconnected UDP socket.
func NewUDP() (*UDP, error) {
	s, err := newSocket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return nil, err
	}
	return &UDP{Datagram{Socket: s}}, nil
}
