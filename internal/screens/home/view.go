package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/scorecard/internal/ui/format"
	"github.com/abhisek/scorecard/internal/ui/theme"
)

const titleText = "S · C · O · R · E · C · A · R · D"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 60)
}

func renderTitle(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.RankGold).
		Bold(true).
		Render(titleText)
}

// renderStatsBar renders level, streak and the last score in a bordered
// box matching content width.
func renderStatsBar(level, streak int, lastScore *float64, cw int) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.RankGold).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	score := dimStyle.Render("NO RESULT YET")
	if lastScore != nil {
		score = scoreStyle.Render("LAST " + format.Percent(*lastScore))
	}

	stats := fmt.Sprintf("%s  %s  %s",
		levelStyle.Render(fmt.Sprintf("LV %d", level)),
		streakStyle.Render(fmt.Sprintf("★ %d DAY", streak)),
		score,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	selectedBtn := base.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.RankGold).
		BorderForeground(theme.RankGold)
	normalBtn := base.Foreground(theme.Text)
	disabledBtn := base.Foreground(theme.TextDim)

	var buttons []string
	for i, label := range items {
		switch {
		case disabled[i]:
			buttons = append(buttons, disabledBtn.Render(label))
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderFrame wraps content in a double-border frame, centering it
// vertically and horizontally within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).   // account for border chars
		Height(max(height-2, 0)). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
