package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/scorecard/internal/ui/theme"
)

// Card is a bordered panel with a dim heading and a body.
type Card struct {
	Heading string
	Body    string
	Width   int
}

// NewCard creates a new card.
func NewCard(heading, body string, width int) Card {
	return Card{Heading: heading, Body: body, Width: width}
}

// View renders the card.
func (c Card) View() string {
	var b strings.Builder
	if c.Heading != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Heading))
		b.WriteString("\n")
	}
	b.WriteString(c.Body)

	style := theme.Card
	if c.Width > 0 {
		style = style.Width(c.Width)
	}
	return style.Render(b.String())
}

// Row joins cards horizontally with a one-column gap.
func Row(cards ...string) string {
	parts := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
