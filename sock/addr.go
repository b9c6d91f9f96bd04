// File: sock/addr.go
// Author: momentics <momentics@gmail.com>

package sock

import (
	"fmt"
	"net"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/momentics/netfd/api"
)

// Addr is a family-tagged endpoint holding the kernel sockaddr it was built
// from or resolved to. Produced by address queries and resolution, consumed
// by Bind/Connect/SendTo.
type Addr struct {
	family int
	sa     unix.Sockaddr
}

// ResolveAddr turns host and port into an endpoint. host may be an IP
// literal or a name; names resolve through the system resolver, preferring
// IPv4 results.
func ResolveAddr(host string, port uint16) (*Addr, error) {
	if ip := net.ParseIP(host); ip != nil {
		return addrFromIP(ip, port)
	}
	ips, err := net.LookupIP(host)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", host, err)
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return addrFromIP(ip, port)
		}
	}
	return addrFromIP(ips[0], port)
}

// AddrFrom4 builds an IPv4 endpoint without resolution.
func AddrFrom4(ip [4]byte, port uint16) *Addr {
	return &Addr{
		family: unix.AF_INET,
		sa:     &unix.SockaddrInet4{Port: int(port), Addr: ip},
	}
}

// PathAddr builds a local-domain endpoint from a filesystem path.
func PathAddr(path string) *Addr {
	return &Addr{
		family: unix.AF_UNIX,
		sa:     &unix.SockaddrUnix{Name: path},
	}
}

func addrFromIP(ip net.IP, port uint16) (*Addr, error) {
	if v4 := ip.To4(); v4 != nil {
		var raw [4]byte
		copy(raw[:], v4)
		return AddrFrom4(raw, port), nil
	}
	var raw [16]byte
	copy(raw[:], ip.To16())
	return &Addr{
		family: unix.AF_INET6,
		sa:     &unix.SockaddrInet6{Port: int(port), Addr: raw},
	}, nil
}

// addrFromSockaddr wraps a kernel-produced sockaddr.
func addrFromSockaddr(sa unix.Sockaddr) (*Addr, error) {
	switch sa.(type) {
	case *unix.SockaddrInet4:
		return &Addr{family: unix.AF_INET, sa: sa}, nil
	case *unix.SockaddrInet6:
		return &Addr{family: unix.AF_INET6, sa: sa}, nil
	case *unix.SockaddrUnix:
		return &Addr{family: unix.AF_UNIX, sa: sa}, nil
	}
	if a, ok := addrFromSockaddrOS(sa); ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: sockaddr %T", api.ErrNotSupported, sa)
}

// Family returns the raw AF_* constant.
func (a *Addr) Family() int { return a.family }

// Network names the address family.
func (a *Addr) Network() string {
	switch a.family {
	case unix.AF_INET:
		return "inet4"
	case unix.AF_INET6:
		return "inet6"
	case unix.AF_UNIX:
		return "unix"
	case afPacket:
		return "packet"
	}
	return "unknown"
}

// Host renders the IP half of an internet endpoint, or "" otherwise.
func (a *Addr) Host() string {
	switch sa := a.sa.(type) {
	case *unix.SockaddrInet4:
		return net.IP(sa.Addr[:]).String()
	case *unix.SockaddrInet6:
		return net.IP(sa.Addr[:]).String()
	}
	return ""
}

// Port returns the port of an internet endpoint, or 0 otherwise.
func (a *Addr) Port() uint16 {
	switch sa := a.sa.(type) {
	case *unix.SockaddrInet4:
		return uint16(sa.Port)
	case *unix.SockaddrInet6:
		return uint16(sa.Port)
	}
	return 0
}

// Path returns the filesystem path of a local-domain endpoint, or "".
func (a *Addr) Path() string {
	if sa, ok := a.sa.(*unix.SockaddrUnix); ok {
		return sa.Name
	}
	return ""
}

// String renders host:port for internet families, the path for local
// domain, and a family-tagged fallback otherwise.
func (a *Addr) String() string {
	switch a.family {
	case unix.AF_INET, unix.AF_INET6:
		return net.JoinHostPort(a.Host(), strconv.Itoa(int(a.Port())))
	case unix.AF_UNIX:
		return a.Path()
	}
	return a.Network()
}

// sockaddr exposes the kernel representation for syscalls.
func (a *Addr) sockaddr() unix.Sockaddr { return a.sa }
