package snapshot

import (
	"sync/atomic"

	"github.com/hamed0406/sharewatch/internal/domain"
)

// Store holds the most recently published snapshot. Publication is a single
// pointer swap, so readers always see either the previous complete snapshot
// or the new complete one.
type Store struct {
	current atomic.Pointer[domain.Snapshot]
}

func NewStore() *Store {
	return &Store{}
}

// Publish replaces the current snapshot wholesale. The caller hands over
// ownership; the snapshot must not be mutated afterwards.
func (s *Store) Publish(snap domain.Snapshot) {
	s.current.Store(&snap)
}

// Current returns the latest snapshot and whether one has been published yet.
func (s *Store) Current() (domain.Snapshot, bool) {
	if p := s.current.Load(); p != nil {
		return *p, true
	}
	return domain.Snapshot{}, false
}
