// Package fd
// Author: momentics <momentics@gmail.com>
//
// Shared-ownership wrapper for kernel file descriptors.
//
// An FD guards exactly one descriptor. Sharing never happens implicitly:
// Dup is the only path to a second guard, and the two then observe the same
// open-file state (offset, blocking mode, EOF flag, counters). Whichever
// path releases the last reference closes the descriptor, exactly once.
// Concurrent I/O through sibling guards races at the kernel level exactly
// as two threads sharing one raw descriptor would; the package serializes
// closing, not access.
package fd
