package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/scorecard/internal/results"
	"github.com/abhisek/scorecard/internal/ui/format"
)

// resultReport is the --json output of the result command.
type resultReport struct {
	TestID string `json:"testId,omitempty"`
	results.Summary
	Time    string `json:"time"`
	Verdict string `json:"verdict,omitempty"`
}

func newResultCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "result",
		Short: "Show the result of a submitted test attempt",
		Long: "Reads a result state document ({\"testId\", \"elapsedSeconds\", \"submitResult\", \"questions\"})\n" +
			"and opens the results page, or prints the derived summary with --json.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			st, err := readState(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("elapsed") {
				secs, _ := cmd.Flags().GetInt("elapsed")
				st.ElapsedSeconds = max(secs, 0)
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeReport(cmd.OutOrStdout(), st)
			}
			return runApp(cmd, &st)
		},
	}
	c.Flags().StringP("file", "f", "", "Result state JSON file (\"-\" for stdin)")
	c.Flags().Int("elapsed", 0, "Override elapsed seconds")
	c.Flags().Bool("json", false, "Print the summary as JSON instead of opening the TUI")
	_ = c.MarkFlagRequired("file")
	return c
}

func readState(stdin io.Reader, path string) (results.State, error) {
	if path == "-" {
		return results.DecodeState(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return results.State{}, fmt.Errorf("open result state: %w", err)
	}
	defer f.Close()
	return results.DecodeState(f)
}

func writeReport(w io.Writer, st results.State) error {
	sum := st.Summary()
	report := resultReport{
		TestID:  st.TestID,
		Summary: sum,
		Time:    format.Clock(sum.ElapsedSeconds),
		Verdict: sum.Verdict(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
