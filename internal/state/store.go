package state

import (
	"sync"
	"time"

	"github.com/marden/nodeglass/internal/health"
)

// Snapshot is the latest node-health data available to the UI.
type Snapshot struct {
	Health      health.Status
	HasHealth   bool
	LastChecked time.Time
}

// Store coordinates concurrent access to the snapshot between the
// background poller (single writer) and the UI (reader).
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot with a fresh health status.
func (s *Store) Update(status health.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Health = status
	s.snapshot.HasHealth = true
	s.snapshot.LastChecked = time.Now()
}

// Snapshot returns a copy of the current snapshot. Before the first update
// it is the zero Snapshot with HasHealth false.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
