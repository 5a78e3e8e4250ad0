package notify

import (
	"bytes"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	core, logs := observer.New(zap.DebugLevel)

	n := NewConsole(&buf, zap.New(core))
	n.Notify("✓ Task moved to today's Daily Note")
	n.Notify("Task is already marked as moved")

	want := "✓ Task moved to today's Daily Note\nTask is already marked as moved\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if logs.Len() != 2 {
		t.Errorf("logged %d entries, want 2", logs.Len())
	}
}

func TestConsole_NilLogger(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, nil).Notify("hello")
	if buf.String() != "hello\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	if c.Last() != "" {
		t.Errorf("Last() on empty collector = %q", c.Last())
	}

	c.Notify("one")
	c.Notify("two")

	if c.Last() != "two" {
		t.Errorf("Last() = %q, want two", c.Last())
	}
	if got := c.Messages(); len(got) != 2 || got[0] != "one" {
		t.Errorf("Messages() = %q", got)
	}

	drained := c.Drain()
	if len(drained) != 2 {
		t.Errorf("Drain() = %q", drained)
	}
	if len(c.Messages()) != 0 {
		t.Error("collector not cleared after Drain")
	}
}
