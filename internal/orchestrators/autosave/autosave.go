// Package autosave periodically writes the live character to storage.
package autosave

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-hud/internal/errors"
)

// DefaultInterval is how often the character is saved
const DefaultInterval = 30 * time.Second

// Persister saves the live character
type Persister interface {
	Persist(ctx context.Context) error
}

// Config holds the dependencies for the autosave loop
type Config struct {
	Persister Persister
	Interval  time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Persister == nil {
		vb.RequiredField("Persister")
	}
	errors.ValidateMin("Interval", c.Interval, 0, vb)
	return vb.Build()
}

// Loop saves on every tick until its context ends
type Loop struct {
	persister Persister
	interval  time.Duration
}

// New creates an autosave loop. A zero interval means DefaultInterval.
func New(cfg *Config) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = DefaultInterval
	}

	return &Loop{persister: cfg.Persister, interval: interval}, nil
}

// Run blocks until ctx is done, then makes one last save. Save failures are
// logged and retried on the next tick.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "autosave started", "interval", l.interval)

	for {
		select {
		case <-ctx.Done():
			l.flush()
			return nil
		case <-ticker.C:
			if err := l.persister.Persist(ctx); err != nil {
				slog.ErrorContext(ctx, "autosave failed", "error", err)
			}
		}
	}
}

// flush runs after shutdown starts so it gets its own short deadline
func (l *Loop) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := l.persister.Persist(ctx); err != nil {
		slog.ErrorContext(ctx, "final autosave failed", "error", err)
		return
	}
	slog.InfoContext(ctx, "autosave stopped")
}
