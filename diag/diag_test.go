package diag_test

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/momentics/netfd/diag"
)

func TestHandlerReceivesContext(t *testing.T) {
	type record struct {
		ctx any
		msg string
	}
	var got record
	marker := &struct{ name string }{"sink"}

	diag.SetHandler(func(ctx any, msg string) {
		got = record{ctx: ctx, msg: msg}
	}, marker)
	defer diag.Reset()

	diag.Debugf("fd %d gone", 7)
	if got.msg != "fd 7 gone" {
		t.Fatalf("message %q", got.msg)
	}
	if got.ctx != any(marker) {
		t.Fatalf("context not threaded through: %v", got.ctx)
	}
}

func TestLastWriterWins(t *testing.T) {
	var first, second int
	diag.SetHandler(func(any, string) { first++ }, nil)
	diag.SetHandler(func(any, string) { second++ }, nil)
	defer diag.Reset()

	diag.Debugf("ping")
	if first != 0 || second != 1 {
		t.Fatalf("delivery: first=%d second=%d", first, second)
	}
}

func TestCaptureRing(t *testing.T) {
	c := diag.NewCapture(3)
	for i := 0; i < 5; i++ {
		c.Handle(nil, fmt.Sprintf("msg-%d", i))
	}
	msgs := c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("retained %d", len(msgs))
	}
	if msgs[0] != "msg-2" || msgs[2] != "msg-4" {
		t.Fatalf("ring order: %v", msgs)
	}
	state := c.DumpState()
	if state["retained"] != 3 || state["limit"] != 3 {
		t.Fatalf("state: %v", state)
	}
}

func TestCaptureAsGlobalSink(t *testing.T) {
	c := diag.NewCapture(8)
	diag.SetHandler(c.Handle, nil)
	defer diag.Reset()

	diag.Debugf("one")
	diag.Debugf("two")
	if c.Len() != 2 {
		t.Fatalf("captured %d", c.Len())
	}
}

func TestLogrusHandler(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	h := diag.NewLogrusHandler(logger)
	h(nil, "close fd 3 failed")

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("no log entry")
	}
	if entry.Message != "close fd 3 failed" {
		t.Fatalf("message %q", entry.Message)
	}
	if entry.Data["source"] != "netfd" {
		t.Fatalf("fields: %v", entry.Data)
	}
}
