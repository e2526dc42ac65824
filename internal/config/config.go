// internal/config/config.go
package config

// Transport kinds.
const (
	KindSerial = "serial"
	KindModbus = "modbus"
)

type Config struct {
	Charger ChargerConfig `yaml:"charger"`
}

type ChargerConfig struct {
	Pool      PoolConfig      `yaml:"pool"`
	Transport TransportConfig `yaml:"transport"`
	Consumer  ConsumerConfig  `yaml:"consumer"`
	Log       LogConfig       `yaml:"log"`
}

// ---- POOL ----

type PoolConfig struct {
	Capacity int `yaml:"capacity" env:"CHARGER_POOL_CAPACITY"`
}

// ---- TRANSPORT ----

type TransportConfig struct {
	Kind string `yaml:"kind" env:"CHARGER_TRANSPORT"`

	// serial
	Device   string `yaml:"device" env:"CHARGER_DEVICE"`
	BaudRate int    `yaml:"baud_rate" env:"CHARGER_BAUD"`

	// modbus
	Endpoint string `yaml:"endpoint" env:"CHARGER_ENDPOINT"`
	UnitID   uint8  `yaml:"unit_id" env:"CHARGER_UNIT_ID"`
	Register uint16 `yaml:"register" env:"CHARGER_REGISTER"`

	TimeoutMs int `yaml:"timeout_ms" env:"CHARGER_TIMEOUT_MS"`
}

// ---- CONSUMER ----

type ConsumerConfig struct {
	IntervalMs int `yaml:"interval_ms" env:"CHARGER_DRAIN_INTERVAL_MS"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level" env:"CHARGER_LOG_LEVEL"`
}
