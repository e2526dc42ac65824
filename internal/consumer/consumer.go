// internal/consumer/consumer.go
package consumer

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/nicekhan23/battery/internal/command"
	"github.com/nicekhan23/battery/internal/pool"
)

// Sink is the exact contract the consumer needs from a transport.
type Sink interface {
	Send(cmd command.Command) error
}

// Consumer drains the pool and forwards commands to the charger link.
// One consumer per pool.
type Consumer struct {
	pool     *pool.Pool
	sink     Sink
	interval time.Duration
	log      zerolog.Logger
}

func New(p *pool.Pool, sink Sink, interval time.Duration, log zerolog.Logger) (*Consumer, error) {
	if p == nil {
		return nil, errors.New("consumer: pool required")
	}
	if sink == nil {
		return nil, errors.New("consumer: sink required")
	}
	if interval <= 0 {
		return nil, errors.New("consumer: interval must be > 0")
	}
	return &Consumer{pool: p, sink: sink, interval: interval, log: log}, nil
}

// DrainOnce forwards every command currently resident, oldest first.
// Returns the number taken from the pool. A send failure does not stop
// the drain: the command already left the pool, and retry policy belongs
// to the operator, not the admission layer.
func (c *Consumer) DrainOnce() (int, error) {
	taken := 0
	for {
		cmd, err := c.pool.TakeNext()
		if errors.Is(err, pool.ErrEmpty) {
			return taken, nil
		}
		if err != nil {
			return taken, err
		}
		taken++

		if err := c.sink.Send(cmd); err != nil {
			c.log.Warn().Stringer("type", cmd.Type).Err(err).Msg("transport send failed")
		}
	}
}

// Run polls the pool on a fixed interval until ctx is canceled or the
// pool is closed underneath it.
func (c *Consumer) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := c.DrainOnce(); err != nil {
				if errors.Is(err, pool.ErrNotInitialized) {
					return err
				}
				c.log.Warn().Err(err).Msg("drain failed")
			}
		}
	}
}
