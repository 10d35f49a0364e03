package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/scorecard/internal/profile"
	"github.com/abhisek/scorecard/internal/router"
	"github.com/abhisek/scorecard/internal/screen"
	"github.com/abhisek/scorecard/internal/screens/home"
	"github.com/abhisek/scorecard/internal/ui/layout"
)

// Options configures the application. See home.Options for the fields.
// When LastResult is set the app opens on its result page.
type Options = home.Options

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	profile profile.Provider
	initial tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen at the bottom of
// the stack.
func newAppModel(opts Options) AppModel {
	if opts.Profile == nil {
		opts.Profile = profile.NewStore(profile.Snapshot{})
	}
	r := router.New(home.New(opts))

	var initial tea.Cmd
	if opts.LastResult != nil {
		initial = r.Push(home.ResultScreen(opts, *opts.LastResult))
	}

	return AppModel{
		router:  r,
		profile: opts.Profile,
		initial: initial,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initial
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.capturesInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) capturesInput() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturesInput()
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.profile.Level(), m.profile.Streak(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
