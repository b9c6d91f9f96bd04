// File: diag/diag.go
// Author: momentics <momentics@gmail.com>

package diag

import (
	"fmt"
	"os"
	"sync/atomic"
)

// Handler receives one formatted diagnostic message. ctx is the opaque
// value registered alongside the handler.
type Handler func(ctx any, message string)

type sink struct {
	handle Handler
	ctx    any
}

var current atomic.Pointer[sink]

func init() {
	Reset()
}

func defaultHandler(_ any, message string) {
	fmt.Fprintf(os.Stderr, "DEBUG: %s\n", message)
}

// SetHandler replaces the process-wide sink. Last writer wins.
func SetHandler(h Handler, ctx any) {
	current.Store(&sink{handle: h, ctx: ctx})
}

// Reset restores the default stderr sink.
func Reset() {
	current.Store(&sink{handle: defaultHandler})
}

// Debugf formats a message and hands it to the registered sink.
func Debugf(format string, args ...any) {
	s := current.Load()
	s.handle(s.ctx, fmt.Sprintf(format, args...))
}
