// File: sock/device_linux.go
//go:build linux

// Author: momentics <momentics@gmail.com>

package sock

import "golang.org/x/sys/unix"

// BindToDevice restricts the socket to one network interface
// (SO_BINDTODEVICE). Requires CAP_NET_RAW.
func (s *Socket) BindToDevice(name string) error {
	return s.Syscall("setsockopt", func(raw int) error {
		return unix.BindToDevice(raw, name)
	})
}
