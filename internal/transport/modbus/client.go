// internal/transport/modbus/client.go
package modbus

import (
	"errors"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// Client writes command frames into a charger's holding registers over
// Modbus TCP. One TCP connection per charger; requests are serialized.
type Client struct {
	mu       sync.Mutex
	handler  *modbus.TCPClientHandler
	client   modbus.Client
	register uint16
}

type Config struct {
	Endpoint string // host:port
	UnitID   uint8
	Register uint16 // base holding register for the command block
	Timeout  time.Duration
}

func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("transport modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return &Client{
		handler:  h,
		client:   modbus.NewClient(h),
		register: cfg.Register,
	}, nil
}

// WriteFrame packs the frame into big-endian 16-bit registers and writes
// them with a single FC16 request.
func (c *Client) WriteFrame(frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := packFrame(frame)
	qty := uint16(len(payload) / 2)

	_, err := c.client.WriteMultipleRegisters(c.register, qty, payload)
	return err
}

// packFrame zero-pads the frame to a whole number of registers.
func packFrame(frame []byte) []byte {
	n := (len(frame) + 1) / 2
	out := make([]byte, n*2)
	copy(out, frame)
	return out
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}
