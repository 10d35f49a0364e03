package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scorecard/internal/screen"
	"github.com/abhisek/scorecard/internal/ui/layout"
	"github.com/abhisek/scorecard/internal/ui/theme"
)

const defaultMessage = "This part of the app lives in the learning platform.\nOpen it there to continue."

// PlaceholderScreen stands in for pages that are not part of this app.
type PlaceholderScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)
var _ screen.KeyHintProvider = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title.
func New(title string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, message: defaultMessage}
}

// WithMessage replaces the body text.
func (p *PlaceholderScreen) WithMessage(msg string) *PlaceholderScreen {
	p.message = msg
	return p
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (p *PlaceholderScreen) View(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ " + p.title + " ╌╌\n\n" + p.message)

	return content
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
