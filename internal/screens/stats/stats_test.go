package stats

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scorecard/internal/bgtask"
	"github.com/abhisek/scorecard/internal/profile"
)

type storeRefresher struct {
	store *profile.Store
	snap  profile.Snapshot
	calls int
}

func (r *storeRefresher) Refresh(context.Context) error {
	r.calls++
	r.store.Set(r.snap)
	return nil
}

func TestStatsScreen_Title(t *testing.T) {
	if New(nil, nil, nil).Title() != "Stats" {
		t.Error("unexpected title")
	}
}

func TestStatsScreen_View(t *testing.T) {
	store := profile.NewStore(profile.Snapshot{Username: "ada", Avatar: "a.png", Level: 5, Streak: 7, NextLevelProgressPct: 40})
	view := New(store, nil, nil).View(100, 30)

	for _, want := range []string{"● ada", "Level 5", "★ 7 day streak", "Next milestone: 10 days (3 to go)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStatsScreen_GuestView(t *testing.T) {
	view := New(nil, nil, nil).View(100, 30)
	if !strings.Contains(view, "○ Guest") {
		t.Error("expected guest placeholder")
	}
}

func TestStatsScreen_InitWithoutRefresher(t *testing.T) {
	if cmd := New(nil, nil, nil).Init(); cmd != nil {
		t.Error("expected nil command without a refresher")
	}
}

func TestStatsScreen_RefreshUpdatesView(t *testing.T) {
	store := profile.NewStore(profile.Snapshot{Username: "ada", Streak: 1})
	r := &storeRefresher{store: store, snap: profile.Snapshot{Username: "ada", Streak: 12}}
	s := New(store, r, nil)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected refresh command")
	}
	if !strings.Contains(s.View(100, 30), "refreshing") {
		t.Error("expected refreshing indicator")
	}

	// A second refresh while one is in flight is ignored.
	if _, again := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); again != nil {
		t.Error("refresh should not overlap")
	}

	msg := cmd()
	if done, ok := msg.(bgtask.DoneMsg); !ok || done.Name != RefreshTaskName {
		t.Fatalf("msg = %#v", msg)
	}
	s.Update(msg)

	view := s.View(100, 30)
	if !strings.Contains(view, "★ 12 day streak") {
		t.Error("expected refreshed streak")
	}
	if strings.Contains(view, "refreshing") {
		t.Error("refreshing indicator should clear")
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("r should start a new refresh")
	}
	cmd()
	if r.calls != 2 {
		t.Errorf("Refresh calls = %d, want 2", r.calls)
	}
}

func TestStatsScreen_KeyHints(t *testing.T) {
	if got := len(New(nil, nil, nil).KeyHints()); got != 1 {
		t.Errorf("hints without refresher = %d, want 1", got)
	}
	r := &storeRefresher{store: profile.NewStore(profile.Snapshot{})}
	if got := len(New(nil, r, nil).KeyHints()); got != 2 {
		t.Errorf("hints with refresher = %d, want 2", got)
	}
}
