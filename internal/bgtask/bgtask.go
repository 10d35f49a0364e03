// Package bgtask runs best-effort work off the UI loop.
package bgtask

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
)

// DoneMsg reports that a best-effort task finished, whatever its outcome.
type DoneMsg struct {
	Name string
}

// BestEffort returns a command that runs fn once in the background. Its
// error is logged at debug level and otherwise discarded: it is never
// retried and never reaches the user. A nil fn yields a nil command.
func BestEffort(log *slog.Logger, name string, fn func(context.Context) error) tea.Cmd {
	if fn == nil {
		return nil
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func() tea.Msg {
		start := time.Now()
		if err := fn(context.Background()); err != nil {
			log.Debug("background task failed",
				"task", name,
				"duration", time.Since(start),
				"error", err)
		} else {
			log.Debug("background task finished",
				"task", name,
				"duration", time.Since(start))
		}
		return DoneMsg{Name: name}
	}
}
