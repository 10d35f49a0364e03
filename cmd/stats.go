package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/scorecard/internal/leaderboard"
	"github.com/abhisek/scorecard/internal/profile"
)

func newStatsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "stats",
		Short: "Show learning statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			d, err := buildDeps(cfg)
			if err != nil {
				return err
			}
			defer d.close()

			out := cmd.OutOrStdout()
			var (
				refreshErr error
				entries    []leaderboard.Entry
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			if d.client != nil {
				g.Go(func() error {
					// A failed refresh keeps the seeded profile.
					refreshErr = d.client.Refresh(ctx)
					return nil
				})
			}
			g.Go(func() error {
				var err error
				entries, err = d.board.Top(ctx, d.cfg.Leaderboard.Limit)
				if err != nil {
					return fmt.Errorf("load leaderboard: %w", err)
				}
				return nil
			})
			if err := g.Wait(); err != nil {
				return err
			}
			if refreshErr != nil {
				d.log.Warn("stats refresh failed", "error", refreshErr)
				fmt.Fprintln(out, "Could not reach the stats API, showing cached profile.")
			}

			snap := d.profile.Snapshot()
			name := snap.Username
			if name == "" {
				name = "Guest"
			}
			next := profile.NextStreakMilestone(snap.Streak)
			fmt.Fprintf(out, "User:       %s\n", name)
			fmt.Fprintf(out, "Level:      %d (%.0f%% to next)\n", snap.Level, d.profile.NextLevelProgressPct())
			fmt.Fprintf(out, "Streak:     %d days\n", snap.Streak)
			fmt.Fprintf(out, "Next goal:  %d days\n", next)
			if rank, ok := rankOf(entries, snap.Username); ok {
				fmt.Fprintf(out, "Rank:       #%s\n", rank)
			}

			if publish, _ := cmd.Flags().GetBool("publish"); publish {
				if d.redis == nil {
					return errors.New("--publish needs a redis leaderboard (leaderboard.redis_addr)")
				}
				if snap.Username == "" {
					return errors.New("--publish needs a username")
				}
				if err := d.redis.SetStreak(cmd.Context(), snap.Username, snap.Streak, snap.Avatar); err != nil {
					return err
				}
				fmt.Fprintln(out, "Streak published to the leaderboard.")
			}
			return nil
		},
	}
	c.Flags().Bool("publish", false, "Write your streak to the Redis leaderboard")
	return c
}

// rankOf finds username on the board.
func rankOf(entries []leaderboard.Entry, username string) (string, bool) {
	if username == "" {
		return "", false
	}
	for _, e := range entries {
		if e.Label == username {
			return e.Rank, true
		}
	}
	return "", false
}
