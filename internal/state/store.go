package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/itemdeck/internal/catalog"
)

// Snapshot represents the catalog load outcome visible to the UI.
type Snapshot struct {
	Readiness catalog.Readiness
	Items     []catalog.Item
	StartedAt time.Time
	LoadedAt  time.Time
	LastError error
}

// Elapsed returns how long the load took, or has taken so far.
func (s Snapshot) Elapsed() time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	if s.LoadedAt.IsZero() {
		return time.Since(s.StartedAt)
	}
	return s.LoadedAt.Sub(s.StartedAt)
}

// Store coordinates the background loader with the UI. It accepts exactly one
// outcome: once Ready or Failed, later results are dropped.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin records the load start time. It has no effect after a terminal state.
func (s *Store) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Readiness.Terminal() {
		return
	}
	s.snapshot.StartedAt = time.Now()
}

// Resolve records the load outcome and reports whether it was accepted. A
// non-nil err marks the catalog Failed; otherwise it becomes Ready.
func (s *Store) Resolve(items []catalog.Item, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Readiness.Terminal() {
		return false
	}
	s.snapshot.LoadedAt = time.Now()
	if err != nil {
		s.snapshot.Readiness = catalog.Failed
		s.snapshot.LastError = err
		return true
	}
	s.snapshot.Readiness = catalog.Ready
	s.snapshot.Items = cloneItems(items)
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Items = cloneItems(s.snapshot.Items)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneItems(items []catalog.Item) []catalog.Item {
	if len(items) == 0 {
		return []catalog.Item{}
	}
	dup := make([]catalog.Item, len(items))
	copy(dup, items)
	return dup
}
