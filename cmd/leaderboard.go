package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

// labelColumn is the display width of the User column.
const labelColumn = 32

// fitLabel truncates or pads label to exactly width terminal columns.
func fitLabel(label string, width int) string {
	label = ansi.Truncate(label, width, "...")
	return label + strings.Repeat(" ", max(width-ansi.StringWidth(label), 0))
}

func newLeaderboardCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the global streak leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if f, _ := cmd.Flags().GetString("file"); f != "" {
				cfg.Leaderboard.File = f
				cfg.Leaderboard.RedisAddr = ""
			}
			if cmd.Flags().Changed("limit") {
				cfg.Leaderboard.Limit, _ = cmd.Flags().GetInt("limit")
			}

			d, err := buildDeps(cfg)
			if err != nil {
				return err
			}
			defer d.close()

			entries, err := d.board.Top(cmd.Context(), d.cfg.Leaderboard.Limit)
			if err != nil {
				return fmt.Errorf("load leaderboard: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No streaks yet.")
				return nil
			}

			fmt.Fprintf(out, "%5s  %-32s  %s\n", "Rank", "User", "Streak")
			fmt.Fprintln(out, strings.Repeat("─", 50))
			for _, e := range entries {
				fmt.Fprintf(out, "%5s  %s  %s\n", e.Rank, fitLabel(e.Label, labelColumn), e.Value)
			}
			return nil
		},
	}
	c.Flags().String("file", "", "Read entries from a JSON file instead of the configured source")
	c.Flags().Int("limit", 0, "Number of entries to show (0 shows all)")
	return c
}
