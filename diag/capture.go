// File: diag/capture.go
// Author: momentics <momentics@gmail.com>
//
// Bounded retention of recent diagnostics for tests and state dumps.

package diag

import (
	"sync"

	"github.com/eapache/queue"
)

// Capture is a Handler backend that retains the most recent messages in a
// ring. Unlike the global sink it is safe for concurrent use, since tests
// feed it from finalizer goroutines.
type Capture struct {
	mu    sync.Mutex
	limit int
	ring  *queue.Queue
}

// NewCapture creates a capture ring holding at most limit messages.
func NewCapture(limit int) *Capture {
	if limit < 1 {
		limit = 1
	}
	return &Capture{limit: limit, ring: queue.New()}
}

// Handle appends a message, evicting the oldest past the limit. The
// signature matches Handler so a Capture registers directly:
//
//	c := diag.NewCapture(64)
//	diag.SetHandler(c.Handle, nil)
func (c *Capture) Handle(_ any, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ring.Add(message)
	for c.ring.Length() > c.limit {
		c.ring.Remove()
	}
}

// Messages returns the retained messages, oldest first.
func (c *Capture) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, c.ring.Length())
	for i := 0; i < c.ring.Length(); i++ {
		out = append(out, c.ring.Get(i).(string))
	}
	return out
}

// Len returns the number of retained messages.
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ring.Length()
}

// DumpState emits a snapshot for diagnostics.
func (c *Capture) DumpState() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return map[string]any{
		"limit":    c.limit,
		"retained": c.ring.Length(),
	}
}
