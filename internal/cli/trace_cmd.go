package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wardenlabs/warden/internal/cli/formatter"
)

func newTraceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect the audit trail",
	}

	cmd.AddCommand(newTraceListCmd(app))

	return cmd
}

func newTraceListCmd(app *App) *cobra.Command {
	var intentID string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit entries for an intent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if intentID == "" {
				intentID = app.Pipeline.SessionIntent()
			}
			if intentID == "" {
				return fmt.Errorf("no intent selected; pass --intent or run warden intent select")
			}

			entries, err := app.Traces.ByIntent(intentID, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("No trace entries for %s.\n", intentID)
				return nil
			}

			headers := []string{"TIMESTAMP", "CLASS", "FILES", "REVISION"}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				files := make([]string, 0, len(e.Files))
				for _, f := range e.Files {
					files = append(files, f.RelativePath)
				}
				rev := e.VCS.RevisionID
				if len(rev) > 12 {
					rev = rev[:12]
				}
				rows = append(rows, []string{
					formatter.Dim(e.Timestamp),
					string(e.MutationClass),
					strings.Join(files, ", "),
					rev,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&intentID, "intent", "", "Intent ID (defaults to the session intent)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries, most recent last")

	return cmd
}
