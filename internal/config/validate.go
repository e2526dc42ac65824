// internal/config/validate.go
package config

import "fmt"

// MaxDeviceNameLen bounds the serial device path, matching the charger
// firmware's port-name limit.
const MaxDeviceNameLen = 30

// MaxPoolCapacity bounds the configurable slot count.
const MaxPoolCapacity = 1024

var supportedBaudRates = map[int]bool{
	1200:   true,
	2400:   true,
	4800:   true,
	9600:   true,
	19200:  true,
	38400:  true,
	57600:  true,
	115200: true,
}

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration; zero values that Normalize fills in
// later are accepted here.
func Validate(cfg *Config) error {
	c := cfg.Charger

	// Zero means unset; Normalize fills in the default afterwards.
	if c.Pool.Capacity < 0 || c.Pool.Capacity > MaxPoolCapacity {
		return fmt.Errorf("config: pool capacity %d outside 0-%d", c.Pool.Capacity, MaxPoolCapacity)
	}

	switch c.Transport.Kind {
	case KindSerial, "":
		if c.Transport.Device == "" {
			return fmt.Errorf("config: serial transport requires a device")
		}
		if len(c.Transport.Device) > MaxDeviceNameLen {
			return fmt.Errorf(
				"config: device %q exceeds maximum length (%d characters)",
				c.Transport.Device, MaxDeviceNameLen,
			)
		}
		if c.Transport.BaudRate != 0 && !supportedBaudRates[c.Transport.BaudRate] {
			return fmt.Errorf("config: unsupported baud rate %d", c.Transport.BaudRate)
		}

	case KindModbus:
		if c.Transport.Endpoint == "" {
			return fmt.Errorf("config: modbus transport requires an endpoint")
		}

	default:
		return fmt.Errorf("config: unknown transport kind %q", c.Transport.Kind)
	}

	if c.Transport.TimeoutMs < 0 {
		return fmt.Errorf("config: transport timeout_ms must not be negative")
	}
	if c.Consumer.IntervalMs < 0 {
		return fmt.Errorf("config: consumer interval_ms must not be negative")
	}

	switch c.Log.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}

	return nil
}
