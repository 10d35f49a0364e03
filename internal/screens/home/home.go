package home

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scorecard/internal/leaderboard"
	"github.com/abhisek/scorecard/internal/profile"
	"github.com/abhisek/scorecard/internal/results"
	"github.com/abhisek/scorecard/internal/router"
	"github.com/abhisek/scorecard/internal/screen"
	leaderboardscreen "github.com/abhisek/scorecard/internal/screens/leaderboard"
	"github.com/abhisek/scorecard/internal/screens/result"
	statsscreen "github.com/abhisek/scorecard/internal/screens/stats"
	"github.com/abhisek/scorecard/internal/stats"
	"github.com/abhisek/scorecard/internal/ui/components"
)

// Options carries the dependencies the home screen hands to the screens
// it opens. Every field is optional.
type Options struct {
	Profile     profile.Provider
	Stats       stats.Refresher
	Feedback    stats.FeedbackSender
	Leaderboard leaderboard.Source
	Limit       int
	Logger      *slog.Logger

	// LastResult enables the LAST RESULT entry.
	LastResult *results.State
}

// HomeScreen is the main menu.
type HomeScreen struct {
	opts       Options
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool
	lastScore  *float64
}

var _ screen.Screen = (*HomeScreen)(nil)

const (
	itemLastResult = iota
	itemLeaderboard
	itemStats
	itemExit
)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	if opts.Profile == nil {
		opts.Profile = profile.NewStore(profile.Snapshot{})
	}

	menuLabels := []string{"LAST RESULT", "LEADERBOARD", "STATS", "EXIT"}
	disabled := map[int]bool{itemLastResult: opts.LastResult == nil}

	var lastScore *float64
	if opts.LastResult != nil {
		pct := opts.LastResult.Summary().ScorePercent
		lastScore = &pct
	}

	items := []components.MenuItem{
		{Label: menuLabels[itemLastResult], Disabled: disabled[itemLastResult], Action: func() tea.Cmd {
			return push(ResultScreen(opts, *opts.LastResult))
		}},
		{Label: menuLabels[itemLeaderboard], Action: func() tea.Cmd {
			return push(leaderboardscreen.New(opts.Leaderboard, opts.Limit))
		}},
		{Label: menuLabels[itemStats], Action: func() tea.Cmd {
			return push(statsscreen.New(opts.Profile, opts.Stats, opts.Logger))
		}},
		{Label: menuLabels[itemExit], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		opts:       opts,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		disabled:   disabled,
		lastScore:  lastScore,
	}
}

// ResultScreen builds the result page for st with the home screen's
// dependencies.
func ResultScreen(opts Options, st results.State) *result.ResultScreen {
	return result.New(result.Options{
		State:    st,
		Profile:  opts.Profile,
		Stats:    opts.Stats,
		Feedback: opts.Feedback,
		Logger:   opts.Logger,
	})
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw),
		renderStatsBar(h.opts.Profile.Level(), h.opts.Profile.Streak(), h.lastScore, cw),
		renderMenu(h.menuLabels, h.menu.Selected, cw, h.disabled),
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
