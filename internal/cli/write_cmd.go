package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wardenlabs/warden/internal/cli/formatter"
)

func newWriteCmd(app *App) *cobra.Command {
	var intentID, content, fromFile, mutationClass, baselineHash string
	var stdin bool

	cmd := &cobra.Command{
		Use:   "write <relative-path>",
		Short: "Write a workspace file through the gated pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			relPath := args[0]

			data := []byte(content)
			switch {
			case fromFile != "":
				b, err := os.ReadFile(fromFile)
				if err != nil {
					return fmt.Errorf("reading --from file: %w", err)
				}
				data = b
			case stdin:
				b, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				data = b
			}

			raw := map[string]any{
				"file_path": relPath,
				"content":   string(data),
			}
			if intentID != "" {
				raw["intent_id"] = intentID
			}
			if mutationClass != "" {
				raw["mutation_class"] = mutationClass
			}
			if baselineHash != "" {
				raw["original_hash"] = baselineHash
			}

			absPath := filepath.Join(app.Cfg.WorkspaceRoot, relPath)
			result, err := app.Pipeline.Execute(context.Background(), "write_file", raw,
				func() (any, error) {
					if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
						return nil, err
					}
					if err := os.WriteFile(absPath, data, 0o644); err != nil {
						return nil, err
					}
					return relPath, nil
				})
			if err != nil {
				return err
			}
			if result.Err != nil {
				return fmt.Errorf("write failed: %w", result.Err)
			}

			fmt.Printf("Wrote %s (%d bytes)\n", formatter.Bold(relPath), len(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&intentID, "intent", "", "Intent ID to attribute the write to (defaults to the session intent)")
	cmd.Flags().StringVar(&content, "content", "", "File content")
	cmd.Flags().StringVar(&fromFile, "from", "", "Read content from this file")
	cmd.Flags().BoolVar(&stdin, "stdin", false, "Read content from stdin")
	cmd.Flags().StringVar(&mutationClass, "class", "", "Mutation class (AST_REFACTOR|INTENT_EVOLUTION|BUG_FIX|DOCUMENTATION)")
	cmd.Flags().StringVar(&baselineHash, "baseline-hash", "", "Expected sha256 of the current file; the write is refused if the file changed")

	return cmd
}
