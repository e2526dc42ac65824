// internal/observe/logger.go
package observe

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the daemon's console logger. Unknown levels fall back
// to info rather than failing startup.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "chargerd").Logger().Level(lvl)
}
