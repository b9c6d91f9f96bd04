// File: sock/capabilities.go
// Author: momentics <momentics@gmail.com>
//
// Compile-time capability checks: each concrete type must keep satisfying
// exactly the contracts its family and type allow.

package sock

import "github.com/momentics/netfd/api"

var (
	_ api.Addr = (*Addr)(nil)

	_ api.Transport = (*TCP)(nil)
	_ api.Transport = (*UDP)(nil)
	_ api.Transport = (*LocalStream)(nil)
	_ api.Transport = (*LocalDatagram)(nil)
	_ api.Transport = (*Packet)(nil)

	_ api.Datagram = (*UDP)(nil)
	_ api.Datagram = (*LocalDatagram)(nil)
	_ api.Datagram = (*Packet)(nil)

	_ api.StreamListener[*TCP]         = (*TCP)(nil)
	_ api.StreamListener[*LocalStream] = (*LocalStream)(nil)
)
