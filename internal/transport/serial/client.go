// internal/transport/serial/client.go
package serial

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/serial"
)

// Client is a write-only serial link to the charger. It serializes
// writes because command frames must not interleave on the wire.
type Client struct {
	mu   sync.Mutex
	port serial.Port
}

type Config struct {
	Device   string // e.g. /dev/ttyUSB0
	BaudRate int
	Timeout  time.Duration
}

func New(cfg Config) (*Client, error) {
	if cfg.Device == "" {
		return nil, errors.New("transport serial: device required")
	}

	port, err := serial.Open(&serial.Config{
		Address:  cfg.Device,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("transport serial: open %s: %w", cfg.Device, err)
	}

	return &Client{port: port}, nil
}

func (c *Client) WriteFrame(frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, err := c.port.Write(frame)
	if err != nil {
		return err
	}
	if n != len(frame) {
		return fmt.Errorf("transport serial: short write (%d of %d bytes)", n, len(frame))
	}
	return nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.port.Close()
}
