package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wardenlabs/warden/internal/cli/formatter"
)

func newMapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Inspect the file-to-intent map",
	}

	cmd.AddCommand(newMapShowCmd(app))

	return cmd
}

func newMapShowCmd(app *App) *cobra.Command {
	var intentID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show which intent owns each recorded file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if intentID != "" {
				mappings, err := app.Registry.MappingsByIntent(ctx, intentID)
				if err != nil {
					return err
				}
				if len(mappings) == 0 {
					fmt.Printf("No files recorded for %s.\n", intentID)
					return nil
				}
				fmt.Println(formatter.Header(intentID))
				for _, m := range mappings {
					fmt.Printf("  %s\n", m.RelativePath)
				}
				return nil
			}

			byFile, err := app.Registry.FileIntents(ctx)
			if err != nil {
				return err
			}
			if len(byFile) == 0 {
				fmt.Println("The intent map is empty.")
				return nil
			}

			paths := make([]string, 0, len(byFile))
			for p := range byFile {
				paths = append(paths, p)
			}
			sort.Strings(paths)

			rows := make([][]string, 0, len(paths))
			for _, p := range paths {
				rows = append(rows, []string{p, byFile[p]})
			}
			fmt.Print(formatter.RenderTable([]string{"FILE", "INTENT"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&intentID, "intent", "", "Limit to files recorded for this intent")

	return cmd
}
