package result

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/scorecard/internal/bgtask"
	"github.com/abhisek/scorecard/internal/profile"
	"github.com/abhisek/scorecard/internal/results"
	"github.com/abhisek/scorecard/internal/router"
	"github.com/abhisek/scorecard/internal/screen"
	"github.com/abhisek/scorecard/internal/screens/placeholder"
	"github.com/abhisek/scorecard/internal/stats"
	"github.com/abhisek/scorecard/internal/ui/components"
	"github.com/abhisek/scorecard/internal/ui/layout"
)

// RefreshTaskName identifies the stats refresh fired on entry.
const RefreshTaskName = "refresh-stats"

// Options configures a ResultScreen.
type Options struct {
	State    results.State
	Profile  profile.Provider
	Stats    stats.Refresher      // optional
	Feedback stats.FeedbackSender // optional; hides the Feedback action when nil
	Logger   *slog.Logger
}

type action int

const (
	actionRetry action = iota
	actionExit
	actionFeedback
)

// ResultScreen shows the outcome of a submitted test attempt.
type ResultScreen struct {
	testID   string
	summary  results.Summary
	profile  profile.Provider
	stats    stats.Refresher
	feedback stats.FeedbackSender
	log      *slog.Logger

	actions  []action
	selected int

	feedbackOpen bool
	sending      bool
	input        components.TextInput

	toast    string
	toastErr bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.InputCapturer = (*ResultScreen)(nil)

// New creates a ResultScreen. The summary is derived once from the state.
func New(opts Options) *ResultScreen {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	prof := opts.Profile
	if prof == nil {
		prof = profile.NewStore(profile.Snapshot{})
	}

	actions := []action{actionRetry, actionExit}
	if opts.Feedback != nil {
		actions = append(actions, actionFeedback)
	}

	return &ResultScreen{
		testID:   opts.State.TestID,
		summary:  opts.State.Summary(),
		profile:  prof,
		stats:    opts.Stats,
		feedback: opts.Feedback,
		log:      log,
		actions:  actions,
	}
}

// Summary returns the derived result summary.
func (s *ResultScreen) Summary() results.Summary {
	return s.summary
}

// Init fires a one-shot best-effort stats refresh.
func (s *ResultScreen) Init() tea.Cmd {
	if s.stats == nil {
		return nil
	}
	return bgtask.BestEffort(s.log, RefreshTaskName, s.stats.Refresh)
}

func (s *ResultScreen) Title() string {
	return "Results"
}

func (s *ResultScreen) CapturesInput() bool {
	return s.feedbackOpen
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	if s.feedbackOpen {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bgtask.DoneMsg:
		// Profile is read live on each render; nothing to copy.
		return s, nil

	case feedbackSentMsg:
		s.sending = false
		if msg.Err != nil {
			s.log.Warn("feedback not sent", "test_id", s.testID, "error", msg.Err)
			s.setToast("Could not send feedback", true)
			return s, nil
		}
		s.feedbackOpen = false
		s.input.Reset()
		s.setToast("Feedback submitted", false)
		return s, nil

	case tea.KeyMsg:
		if s.feedbackOpen {
			return s.updateFeedback(msg)
		}
		switch msg.String() {
		case "left", "h", "shift+tab":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "right", "l", "tab":
			if s.selected < len(s.actions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			_, cmd := s.buttons()[s.selected].Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

// buttons builds the action row. Only the selected button is active.
func (s *ResultScreen) buttons() []components.Button {
	btns := make([]components.Button, len(s.actions))
	for i, a := range s.actions {
		btns[i] = components.NewButton(a.label(), i == s.selected, func() tea.Cmd {
			return s.press(a)
		})
	}
	return btns
}

func (s *ResultScreen) press(a action) tea.Cmd {
	switch a {
	case actionRetry:
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: placeholder.New("Attempt Test")}
		}
	case actionExit:
		return func() tea.Msg { return router.PopScreenMsg{} }
	case actionFeedback:
		s.feedbackOpen = true
		s.toast = ""
		s.input = components.NewTextInput("What did you think of this test?", 280)
		return s.input.Init()
	}
	return nil
}

func (s *ResultScreen) updateFeedback(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.feedbackOpen = false
		s.input.Reset()
		return s, nil
	case "enter":
		if s.sending {
			return s, nil
		}
		text := s.input.Value()
		if text == "" {
			s.setToast("Feedback cannot be empty", true)
			return s, nil
		}
		s.sending = true
		fb := stats.Feedback{TestID: s.testID, Message: text}
		sender := s.feedback
		return s, func() tea.Msg {
			return feedbackSentMsg{Err: sender.SendFeedback(context.Background(), fb)}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ResultScreen) setToast(text string, isErr bool) {
	s.toast = text
	s.toastErr = isErr
}

func (a action) label() string {
	switch a {
	case actionRetry:
		return "Retry"
	case actionExit:
		return "Exit"
	case actionFeedback:
		return "Feedback"
	default:
		return ""
	}
}
