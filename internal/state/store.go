package state

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot is the latest API health as seen by the poller.
type Snapshot struct {
	Online              bool
	HasChecked          bool
	LastChecked         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed checks
}

// IsOffline returns true when the API has been unreachable for multiple checks.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of one health check. A nil err marks the API
// online and resets the failure counter.
func (s *Store) Update(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.HasChecked = true
	s.snapshot.LastChecked = time.Now()
	if err != nil {
		s.snapshot.Online = false
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.Online = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
