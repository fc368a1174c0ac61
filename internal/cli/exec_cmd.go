package cli

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

func newExecCmd(app *App) *cobra.Command {
	var intentID string

	cmd := &cobra.Command{
		Use:   "exec [flags] -- <command...>",
		Short: "Run a shell command through the gated pipeline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")
			ctx := context.Background()

			raw := map[string]any{"command": command}
			if intentID != "" {
				raw["intent_id"] = intentID
			}

			result, err := app.Pipeline.Execute(ctx, "execute_command", raw,
				func() (any, error) {
					c := exec.CommandContext(ctx, "sh", "-c", command)
					c.Dir = app.Cfg.WorkspaceRoot
					out, err := c.CombinedOutput()
					return string(out), err
				})
			if err != nil {
				return err
			}

			if out, ok := result.Output.(string); ok && out != "" {
				fmt.Print(out)
			}
			if result.Err != nil {
				return fmt.Errorf("command failed: %w", result.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&intentID, "intent", "", "Intent ID to attribute the command to (defaults to the session intent)")

	return cmd
}
