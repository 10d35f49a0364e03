// Package leaderboard loads ranked streak entries and styles their rows.
package leaderboard

import "context"

// DefaultLimit is the number of entries shown on the global board.
const DefaultLimit = 50

// Entry is a single leaderboard row.
type Entry struct {
	Rank  string `json:"rank"`
	Label string `json:"label"`
	Value string `json:"value"`
	Image string `json:"image,omitempty"`
}

// Source provides the top entries of a leaderboard, best first.
type Source interface {
	Top(ctx context.Context, limit int) ([]Entry, error)
}

// StaticSource serves a fixed list of entries.
type StaticSource struct {
	Entries []Entry
}

var _ Source = (*StaticSource)(nil)

func (s *StaticSource) Top(_ context.Context, limit int) ([]Entry, error) {
	return truncate(s.Entries, limit), nil
}

// truncate returns at most limit entries. A non-positive limit keeps all.
func truncate(entries []Entry, limit int) []Entry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
