// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultCapacity   = 32
	DefaultBaudRate   = 9600
	DefaultTimeoutMs  = 500
	DefaultIntervalMs = 50
	DefaultLogLevel   = "info"
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	c := &cfg.Charger

	if c.Pool.Capacity == 0 {
		c.Pool.Capacity = DefaultCapacity
	}
	if c.Transport.Kind == "" {
		c.Transport.Kind = KindSerial
	}
	if c.Transport.BaudRate == 0 {
		c.Transport.BaudRate = DefaultBaudRate
	}
	if c.Transport.TimeoutMs == 0 {
		c.Transport.TimeoutMs = DefaultTimeoutMs
	}
	if c.Consumer.IntervalMs == 0 {
		c.Consumer.IntervalMs = DefaultIntervalMs
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
