package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/scorecard/internal/results"
	"github.com/abhisek/scorecard/internal/ui/components"
	"github.com/abhisek/scorecard/internal/ui/format"
	"github.com/abhisek/scorecard/internal/ui/theme"
)

func (s *ResultScreen) View(width, height int) string {
	cw := min(width-4, 72)
	if cw < 40 {
		cw = 40
	}

	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Results"))

	sections = append(sections, s.profileCard(cw))
	sections = append(sections, scoreCard(s.summary, cw))

	// Points take a third of the row, performance the rest.
	pointsWidth := (cw - 1) / 3
	sections = append(sections, components.Row(
		pointsCard(s.summary, pointsWidth),
		s.performanceCard(cw-1-pointsWidth),
	))

	sections = append(sections, s.actionsView())

	if s.feedbackOpen {
		sections = append(sections, s.feedbackModal(cw))
	}

	if s.toast != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.toastErr {
			style = style.Foreground(theme.Error)
		}
		sections = append(sections, style.Render(s.toast))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *ResultScreen) profileCard(width int) string {
	name := s.profile.Username()
	if name == "" {
		name = "Guest"
	}
	avatar := "○"
	if s.profile.Avatar() != "" {
		avatar = "●"
	}

	header := lipgloss.NewStyle().Foreground(theme.Accent).Render(avatar) + " " +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(name) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("   Level %d", s.profile.Level()))

	bar := components.NewProgressBar("Next level", s.profile.NextLevelProgressPct()/100, true, width-6)
	return components.NewCard("", header+"\n"+bar.View(), width).View()
}

func scoreCard(sum results.Summary, width int) string {
	score := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d/%d correct", sum.Correct, sum.Total))
	pct := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(format.Percent(sum.ScorePercent))

	line := score + "   " + pct
	if badge := verdictBadge(sum); badge != "" {
		gap := width - 6 - lipgloss.Width(line) - lipgloss.Width(badge)
		if gap < 2 {
			gap = 2
		}
		line += strings.Repeat(" ", gap) + badge
	}
	return components.NewCard("Score", line, width).View()
}

// verdictBadge renders nothing when there is no verdict.
func verdictBadge(sum results.Summary) string {
	switch sum.Verdict() {
	case "Passed":
		return theme.BadgePassed.Render("Passed")
	case "Failed":
		return theme.BadgeFailed.Render("Failed")
	default:
		return ""
	}
}

func pointsCard(sum results.Summary, width int) string {
	xpStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if sum.XPAwarded == nil {
		xpStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}
	body := xpStyle.Render(format.XP(sum.XPAwarded)) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Time ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(format.Clock(sum.ElapsedSeconds))
	return components.NewCard("Points", body, width).View()
}

func (s *ResultScreen) performanceCard(width int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	body := label.Render("Correct ") + theme.Correct.Render(fmt.Sprintf("%d", s.summary.Correct)) +
		label.Render("   Incorrect ") + theme.Incorrect.Render(fmt.Sprintf("%d", s.summary.Incorrect)) +
		"\n" + label.Render("Streak ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %d day", s.profile.Streak()))
	return components.NewCard("Performance", body, width).View()
}

func (s *ResultScreen) actionsView() string {
	btns := s.buttons()
	views := make([]string, len(btns))
	for i, b := range btns {
		views[i] = b.View()
	}
	return components.Row(views...)
}

func (s *ResultScreen) feedbackModal(width int) string {
	body := s.input.View()
	if s.sending {
		body += "\n" + theme.Hint.Render("Sending...")
	}
	return components.NewCard("Feedback", body, width).View()
}
