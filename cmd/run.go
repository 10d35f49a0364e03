package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/scorecard/internal/app"
	"github.com/abhisek/scorecard/internal/results"
)

// runApp builds dependencies from configuration and launches the TUI.
// When last is set the app opens on its result page.
func runApp(cmd *cobra.Command, last *results.State) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	d, err := buildDeps(cfg)
	if err != nil {
		return err
	}
	defer d.close()

	return app.Run(d.appOptions(last))
}
