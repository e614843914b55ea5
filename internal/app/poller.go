package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/five82/rentdesk/internal/state"
)

const defaultPollInterval = 15 * time.Second

// HealthChecker probes the rental API. *dvdapi.Client satisfies it.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// StartPoller launches a background goroutine that records API health in the
// store at a fixed cadence. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, checker HealthChecker, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for ctx.Err() == nil {
			refresh(ctx, store, checker)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, checker HealthChecker) {
	err := checker.Health(ctx)
	if ctx.Err() != nil && errors.Is(err, context.Canceled) {
		// Shutting down; the result says nothing about the API.
		return
	}
	store.Update(err)
	if err != nil {
		log.Printf("health check failed: %v", err)
	}
}
