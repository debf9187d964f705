package app

import (
	"context"
	"time"

	"github.com/marden/nodeglass/internal/health"
	"github.com/marden/nodeglass/internal/state"
)

const defaultPollInterval = 2 * time.Second

// StartPoller launches a background goroutine that re-checks node health at
// a fixed cadence. It returns immediately. Each check is one bounded file
// read plus one process probe, so no per-check cancellation is needed; the
// loop just stops at the next tick after ctx is done.
func StartPoller(ctx context.Context, store *state.Store, target *health.Target, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			store.Update(target.Check())
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
