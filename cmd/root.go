package cmd

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scorecard",
		Short: "Test results, stats and leaderboards in the terminal",
		Long:  "Scorecard shows the outcome of a test attempt, your learning stats, and the global streak leaderboard.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, nil)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "Path to config file (overrides SCORECARD_CONFIG env var)")
	root.PersistentFlags().String("log-file", "", "Write diagnostic logs to this file")
	root.PersistentFlags().String("stats-url", "", "Base URL of the stats API")

	root.AddCommand(newResultCmd())
	root.AddCommand(newLeaderboardCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
