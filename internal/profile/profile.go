// Package profile exposes the signed-in learner's profile to screens.
package profile

import (
	"math"
	"sync"
)

// Provider gives read-only access to the learner profile.
type Provider interface {
	Username() string
	Avatar() string
	Level() int
	Streak() int
	// NextLevelProgressPct is the 0-100 progress toward the next level.
	NextLevelProgressPct() float64
}

// Snapshot is a point-in-time copy of the profile as served by the stats API.
type Snapshot struct {
	Username             string  `json:"username" yaml:"username"`
	Avatar               string  `json:"profile_icon" yaml:"avatar"`
	Level                int     `json:"level" yaml:"level"`
	Streak               int     `json:"streak" yaml:"streak"`
	NextLevelProgressPct float64 `json:"next_level_progress_pct" yaml:"next_level_progress_pct"`
}

// Store is a Provider whose snapshot is replaced wholesale by refreshes.
// It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

var _ Provider = (*Store)(nil)

// NewStore creates a Store seeded with snap.
func NewStore(snap Snapshot) *Store {
	return &Store{snap: snap}
}

// Set replaces the current snapshot.
func (s *Store) Set(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Store) Username() string { return s.Snapshot().Username }
func (s *Store) Avatar() string   { return s.Snapshot().Avatar }
func (s *Store) Level() int       { return s.Snapshot().Level }
func (s *Store) Streak() int      { return s.Snapshot().Streak }

func (s *Store) NextLevelProgressPct() float64 {
	return clampPct(s.Snapshot().NextLevelProgressPct)
}

func clampPct(p float64) float64 {
	switch {
	case p < 0 || math.IsNaN(p):
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
