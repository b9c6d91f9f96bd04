// File: api/transport.go
// Author: momentics <momentics@gmail.com>
//
// Socket capability contracts. Concrete types in sock/ compose exactly the
// capabilities their address family and socket type support, so the legal
// operation set is visible at compile time rather than checked at runtime.

package api

// Addr is a family-tagged network endpoint.
type Addr interface {
	// Network names the address family ("inet4", "inet6", "unix", "packet").
	Network() string

	// String renders host:port, or the filesystem path for local-domain
	// endpoints.
	String() string

	// Family returns the raw AF_* constant.
	Family() int

	// Host renders the IP half of an internet endpoint, "" otherwise.
	Host() string

	// Port returns the port of an internet endpoint, 0 otherwise.
	Port() uint16

	// Path returns the filesystem path of a local-domain endpoint, "".
	Path() string
}

// Transport is the capability shared by every socket: endpoint management
// over a descriptor the kernel already knows is a socket.
type Transport interface {
	Conn

	Bind(addr Addr) error
	Connect(addr Addr) error
	Shutdown(how int) error

	LocalAddr() (Addr, error)
	PeerAddr() (Addr, error)

	// CheckError polls the pending socket error (SO_ERROR); non-nil after a
	// non-blocking Connect resolves unsuccessfully.
	CheckError() error
}

// Datagram is the message-oriented capability (UDP, local datagram, packet).
type Datagram interface {
	// Recv receives one inbound datagram and its source endpoint.
	Recv(p []byte) (n int, from Addr, err error)

	// SendTo sends one datagram to an explicit destination.
	SendTo(p []byte, dest Addr) error

	// Send sends to the connected peer; requires a prior Connect.
	Send(p []byte) error
}

// StreamListener is the connection-accepting capability (TCP, local
// stream). T is the concrete socket type an accept produces, so callers
// keep the full capability set of the accepted connection.
type StreamListener[T Transport] interface {
	Listen(backlog int) error

	// Accept blocks (or reports would-block) until a connection arrives and
	// returns it wrapped over a fresh descriptor.
	Accept() (T, error)
}
