package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/scorecard/internal/leaderboard"
	"github.com/abhisek/scorecard/internal/screen"
	"github.com/abhisek/scorecard/internal/ui/layout"
	"github.com/abhisek/scorecard/internal/ui/theme"
)

type entriesLoadedMsg struct {
	Entries []leaderboard.Entry
	Err     error
}

// headerLines is the number of rows taken by the title block.
const headerLines = 4

// LeaderboardScreen lists the top streaks from a leaderboard source.
type LeaderboardScreen struct {
	source  leaderboard.Source
	limit   int
	entries []leaderboard.Entry
	offset  int
	loaded  bool
	errMsg  string
	height  int
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen. A non-positive limit uses
// leaderboard.DefaultLimit.
func New(source leaderboard.Source, limit int) *LeaderboardScreen {
	if limit <= 0 {
		limit = leaderboard.DefaultLimit
	}
	return &LeaderboardScreen{source: source, limit: limit}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	if s.source == nil {
		return func() tea.Msg { return entriesLoadedMsg{} }
	}
	source, limit := s.source, s.limit
	return func() tea.Msg {
		entries, err := source.Top(context.Background(), limit)
		return entriesLoadedMsg{Entries: entries, Err: err}
	}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
			return s, nil
		case "down", "j":
			if s.offset < s.maxOffset() {
				s.offset++
			}
			return s, nil
		case "home", "g":
			s.offset = 0
			return s, nil
		case "end", "G":
			s.offset = s.maxOffset()
			return s, nil
		}
	}
	return s, nil
}

// visibleRows is how many entries fit below the header. Before the first
// render every entry counts as visible.
func (s *LeaderboardScreen) visibleRows() int {
	if s.height <= 0 {
		return len(s.entries)
	}
	return max(s.height-headerLines, 1)
}

func (s *LeaderboardScreen) maxOffset() int {
	return max(len(s.entries)-s.visibleRows(), 0)
}

func (s *LeaderboardScreen) View(width, height int) string {
	s.height = height
	s.offset = min(s.offset, s.maxOffset())

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Leaderboards")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(fmt.Sprintf("Top %d Highest streak globally", s.limit))))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("Error: %s", s.errMsg)))
		return b.String()
	}
	if !s.loaded {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("Loading leaderboard..."))
		return b.String()
	}
	if len(s.entries) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No streaks yet. Be the first!"))
		return b.String()
	}

	end := min(s.offset+s.visibleRows(), len(s.entries))
	labelWidth := min(max(width-24, 12), 32)
	for _, e := range s.entries[s.offset:end] {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderRow(e, labelWidth)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(e leaderboard.Entry, labelWidth int) string {
	marker := "○"
	if e.Image != "" {
		marker = "●"
	}
	// Marker and space take two columns.
	label := ansi.Truncate(e.Label, max(labelWidth-2, 1), "…")

	rank := lipgloss.NewStyle().Foreground(leaderboard.ColorFor(e.Rank)).Bold(true).
		Width(4).Align(lipgloss.Right).Render(e.Rank)
	name := lipgloss.NewStyle().Foreground(theme.Text).Width(labelWidth).
		Render(marker + " " + label)
	value := lipgloss.NewStyle().Foreground(theme.Accent).Width(8).Align(lipgloss.Right).
		Render("★ " + e.Value)

	return rank + "  " + name + value
}
