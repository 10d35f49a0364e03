package stats

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scorecard/internal/bgtask"
	"github.com/abhisek/scorecard/internal/profile"
	"github.com/abhisek/scorecard/internal/screen"
	"github.com/abhisek/scorecard/internal/stats"
	"github.com/abhisek/scorecard/internal/ui/components"
	"github.com/abhisek/scorecard/internal/ui/layout"
	"github.com/abhisek/scorecard/internal/ui/theme"
)

// RefreshTaskName identifies refreshes started by this screen.
const RefreshTaskName = "stats-dashboard"

// StatsScreen is the learner's dashboard.
type StatsScreen struct {
	profile    profile.Provider
	refresher  stats.Refresher
	log        *slog.Logger
	refreshing bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen. refresher may be nil.
func New(prof profile.Provider, refresher stats.Refresher, log *slog.Logger) *StatsScreen {
	if prof == nil {
		prof = profile.NewStore(profile.Snapshot{})
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &StatsScreen{profile: prof, refresher: refresher, log: log}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.refresh()
}

func (s *StatsScreen) refresh() tea.Cmd {
	if s.refresher == nil || s.refreshing {
		return nil
	}
	s.refreshing = true
	return bgtask.BestEffort(s.log, RefreshTaskName, s.refresher.Refresh)
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	if s.refresher != nil {
		hints = append([]layout.KeyHint{{Key: "r", Description: "Refresh"}}, hints...)
	}
	return hints
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bgtask.DoneMsg:
		if msg.Name == RefreshTaskName {
			s.refreshing = false
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, s.refresh()
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	cw := min(max(width-4, 40), 60)

	name := s.profile.Username()
	if name == "" {
		name = "Guest"
	}
	avatar := "○"
	if s.profile.Avatar() != "" {
		avatar = "●"
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	strong := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	who := lipgloss.NewStyle().Foreground(theme.Accent).Render(avatar) + " " + strong.Render(name)
	if s.refreshing {
		who += dim.Render("  refreshing...")
	}

	bar := components.NewProgressBar("Next level", s.profile.NextLevelProgressPct()/100, true, cw-6)
	level := components.NewCard("Level",
		strong.Render(fmt.Sprintf("Level %d", s.profile.Level()))+"\n"+bar.View(), cw)

	streak := s.profile.Streak()
	next := profile.NextStreakMilestone(streak)
	streakBody := accent.Render(fmt.Sprintf("★ %d day streak", streak)) + "\n" +
		dim.Render(fmt.Sprintf("Next milestone: %d days (%d to go)", next, next-streak))
	streakCard := components.NewCard("Streak", streakBody, cw)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, who, "", level.View(), streakCard.View()))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
