package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/scorecard/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label string
	// Fraction is the filled share, 0 to 1. Values outside are clamped.
	Fraction    float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, fraction float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Fraction:    fraction,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) clamped() float64 {
	switch {
	case p.Fraction < 0 || math.IsNaN(p.Fraction):
		return 0
	case p.Fraction > 1:
		return 1
	default:
		return p.Fraction
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := max(p.Width-lipgloss.Width(result)-percentWidth, 4)
	frac := p.clamped()
	filled := int(math.Round(float64(barWidth) * frac))

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(math.Round(frac*100))))
	}

	return result
}
