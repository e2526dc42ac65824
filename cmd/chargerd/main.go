// cmd/chargerd/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nicekhan23/battery/internal/config"
	"github.com/nicekhan23/battery/internal/consumer"
	"github.com/nicekhan23/battery/internal/observe"
	"github.com/nicekhan23/battery/internal/pool"
	"github.com/nicekhan23/battery/internal/transport"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: chargerd <config.yaml>")
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	logger := observe.NewLogger(cfg.Charger.Log.Level)

	// --------------------
	// Transport + pool + consumer
	// --------------------

	tr, err := transport.Build(cfg.Charger.Transport)
	if err != nil {
		log.Fatalf("transport build failed: %v", err)
	}
	defer tr.Close()

	p := pool.New(pool.Config{
		Capacity: cfg.Charger.Pool.Capacity,
		Observer: observe.LogObserver{Log: logger},
	})
	if err := p.Open(); err != nil {
		log.Fatalf("pool open failed: %v", err)
	}
	defer p.Close()

	interval := time.Duration(cfg.Charger.Consumer.IntervalMs) * time.Millisecond
	c, err := consumer.New(p, tr, interval, logger)
	if err != nil {
		log.Fatalf("consumer build failed: %v", err)
	}

	// --------------------
	// Run until SIGINT/SIGTERM
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	logger.Info().
		Str("transport", cfg.Charger.Transport.Kind).
		Int("capacity", cfg.Charger.Pool.Capacity).
		Msg("chargerd started")

	select {
	case <-ctx.Done():
	case err := <-done:
		if err != nil {
			logger.Error().Err(err).Msg("consumer stopped")
		}
	}

	// Flush whatever is still queued before tearing the pool down.
	stop()
	if n, err := c.DrainOnce(); err == nil && n > 0 {
		logger.Info().Int("flushed", n).Msg("drained remaining commands")
	}

	logger.Info().Msg("chargerd shutting down")
}
