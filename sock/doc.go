// Package sock
// Author: momentics <momentics@gmail.com>
//
// Socket capabilities over fd.FD. Socket carries the operations every
// socket supports; Datagram and the Listen/Accept pairs add the
// message-oriented and connection-accepting capabilities. Concrete types
// (UDP, TCP, Packet, LocalStream, LocalDatagram) compose exactly what
// their family and type allow, so an unsupported operation is a compile
// error, not a runtime surprise.
//
// No connection state machine is tracked in process. The kernel already
// knows whether a socket is bound, listening or connected; operations
// issued in the wrong state come back as SyscallError straight from it.
package sock
