package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scorecard/internal/profile"
	"github.com/abhisek/scorecard/internal/results"
	"github.com/abhisek/scorecard/internal/router"
)

func testState() *results.State {
	return &results.State{
		TestID:     "t-1",
		Submission: results.Submission{"correct_count": 7.0, "total_questions": 10.0},
	}
}

// drive applies msg and runs any returned navigation command once.
func drive(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch nav := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		next, _ = m.Update(nav)
		m = next.(AppModel)
	}
	return m
}

func TestApp_StartsOnHome(t *testing.T) {
	m := newAppModel(Options{})
	if m.router.Active().Title() != "Home" {
		t.Errorf("active = %q, want Home", m.router.Active().Title())
	}
	if m.Init() != nil {
		t.Error("expected no initial command without a result")
	}
}

func TestApp_StartsOnResult(t *testing.T) {
	m := newAppModel(Options{LastResult: testState()})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if m.router.Active().Title() != "Results" {
		t.Errorf("active = %q, want Results", m.router.Active().Title())
	}

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Active().Title() != "Home" {
		t.Errorf("Esc should return home, got %q", m.router.Active().Title())
	}
}

func TestApp_HeaderShowsProfile(t *testing.T) {
	m := newAppModel(Options{Profile: profile.NewStore(profile.Snapshot{Level: 4, Streak: 11})})
	m = drive(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	content := m.render()
	if !strings.Contains(content, "Lv 4") || !strings.Contains(content, "★ 11 day") {
		t.Error("expected level and streak in header")
	}
}

func TestApp_TooSmall(t *testing.T) {
	m := drive(newAppModel(Options{}), tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected minimum size message")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	_, cmd := newAppModel(Options{}).Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestApp_EscLeavesListScreens(t *testing.T) {
	m := newAppModel(Options{})

	// LEADERBOARD is the first enabled item without a last result.
	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.router.Active().Title() != "Leaderboard" {
		t.Fatalf("active = %q, want Leaderboard", m.router.Active().Title())
	}
	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Active().Title() != "Home" {
		t.Errorf("Esc should return home, got %q", m.router.Active().Title())
	}

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.router.Active().Title() != "Stats" {
		t.Fatalf("active = %q, want Stats", m.router.Active().Title())
	}
	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Active().Title() != "Home" {
		t.Errorf("Esc should return home, got %q", m.router.Active().Title())
	}
}
