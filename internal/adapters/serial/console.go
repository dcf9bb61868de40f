package serial

import (
	"io"
	"sync"

	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/domain"
)

// Console is the text channel the reporter prints to
type Console struct {
	mu     sync.Mutex
	w      io.WriteCloser
	closed bool
}

// OpenConsole opens a serial port as the console
func OpenConsole(name string, baudRate int) (*Console, error) {
	port, err := open(name, baudRate)
	if err != nil {
		return nil, err
	}
	return NewConsole(port), nil
}

// NewConsole wraps an already open writer
func NewConsole(w io.WriteCloser) *Console {
	return &Console{w: w}
}

// Write implements io.Writer
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, domain.ErrNotConnected
	}
	return c.w.Write(p)
}

// Close closes the underlying port
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.w.Close()
}
