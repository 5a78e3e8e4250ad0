package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Console implements ports.Notifier by printing each message on its own line
type Console struct {
	w      io.Writer
	logger *zap.Logger
}

// NewConsole creates a notifier writing to w. Messages are also logged at debug level.
func NewConsole(w io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{w: w, logger: logger}
}

func (c *Console) Notify(msg string) {
	c.logger.Debug("notice", zap.String("message", msg))
	fmt.Fprintln(c.w, msg)
}

// Collector implements ports.Notifier by keeping messages for later display
type Collector struct {
	mu   sync.Mutex
	msgs []string
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Notify(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

// Messages returns every collected message in order
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}

// Last returns the most recent message, or "" if there is none
func (c *Collector) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.msgs) == 0 {
		return ""
	}
	return c.msgs[len(c.msgs)-1]
}

// Drain returns the collected messages and clears the collector
func (c *Collector) Drain() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	msgs := c.msgs
	c.msgs = nil
	return msgs
}
