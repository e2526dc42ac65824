// internal/transport/builder.go
package transport

import (
	"fmt"
	"time"

	"github.com/nicekhan23/battery/internal/config"
	tmodbus "github.com/nicekhan23/battery/internal/transport/modbus"
	tserial "github.com/nicekhan23/battery/internal/transport/serial"
)

// Build constructs the transport named by the configuration.
// Connection setup fails fast: a charger that cannot be reached at
// startup is an operator problem, not something to paper over.
func Build(cfg config.TransportConfig) (Transport, error) {
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond

	switch cfg.Kind {
	case config.KindSerial:
		client, err := tserial.New(tserial.Config{
			Device:   cfg.Device,
			BaudRate: cfg.BaudRate,
			Timeout:  timeout,
		})
		if err != nil {
			return nil, err
		}
		return &linkTransport{w: client}, nil

	case config.KindModbus:
		client, err := tmodbus.New(tmodbus.Config{
			Endpoint: cfg.Endpoint,
			UnitID:   cfg.UnitID,
			Register: cfg.Register,
			Timeout:  timeout,
		})
		if err != nil {
			return nil, err
		}
		return &linkTransport{w: client}, nil

	default:
		return nil, fmt.Errorf("transport: unknown kind %q", cfg.Kind)
	}
}
