package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wardenlabs/warden/internal/cli/formatter"
	"github.com/wardenlabs/warden/internal/domain"
	"github.com/wardenlabs/warden/internal/registry"
)

func newIntentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intent",
		Short: "Manage business intents",
	}

	cmd.AddCommand(
		newIntentAddCmd(app),
		newIntentListCmd(app),
		newIntentShowCmd(app),
		newIntentSelectCmd(app),
		newIntentCompleteCmd(app),
	)

	return cmd
}

func newIntentAddCmd(app *App) *cobra.Command {
	var name, summary, description, priority string
	var scope, constraints, related []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new intent",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !domain.ValidIntentPriorities[priority] {
				return fmt.Errorf("invalid priority %q", priority)
			}
			if len(scope) == 0 {
				return fmt.Errorf("at least one --scope pattern is required")
			}

			now := time.Now().UTC()
			intent := &domain.BusinessIntent{
				ID:             registry.NewIntentID(),
				Name:           name,
				Summary:        summary,
				Description:    description,
				Status:         domain.IntentPending,
				Priority:       domain.IntentPriority(priority),
				OwnedScope:     scope,
				Constraints:    constraints,
				RelatedIntents: related,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if intent.Summary == "" {
				intent.Summary = name
			}

			if err := app.Registry.UpdateIntent(ctx, intent); err != nil {
				return err
			}

			fmt.Printf("Registered intent %s (%s)\n", formatter.Bold(intent.ID), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Intent name")
	cmd.Flags().StringVar(&summary, "summary", "", "One-line summary")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityNormal), "Priority (critical|high|normal|low)")
	cmd.Flags().StringSliceVar(&scope, "scope", nil, "Owned scope glob pattern (repeatable)")
	cmd.Flags().StringSliceVar(&constraints, "constraint", nil, "Constraint the work must honor (repeatable)")
	cmd.Flags().StringSliceVar(&related, "related", nil, "Related intent ID (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newIntentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered intents",
		RunE: func(cmd *cobra.Command, args []string) error {
			intents, err := app.Registry.ListIntents(context.Background())
			if err != nil {
				return err
			}
			if len(intents) == 0 {
				fmt.Println("No intents registered.")
				return nil
			}

			headers := []string{"ID", "NAME", "STATUS", "PRIORITY", "SCOPE"}
			rows := make([][]string, 0, len(intents))
			for _, i := range intents {
				row := []string{
					i.ID,
					i.Name,
					formatter.StatusPill(i.Status),
					formatter.PriorityLabel(i.Priority),
					strings.Join(i.OwnedScope, ", "),
				}
				if i.ID == app.Pipeline.SessionIntent() {
					row[0] = formatter.Bold(i.ID + " *")
				}
				rows = append(rows, row)
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newIntentShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <intent-id>",
		Short: "Show one intent with its mapped files and recent traces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			intent, err := app.Registry.GetIntent(ctx, args[0])
			if err != nil {
				return err
			}
			if intent == nil {
				return fmt.Errorf("intent %s not found", args[0])
			}

			fmt.Println(formatter.Header(intent.ID + " " + intent.Name))
			pairs := [][2]string{
				{"Status", formatter.StatusPill(intent.Status)},
				{"Priority", formatter.PriorityLabel(intent.Priority)},
				{"Summary", intent.Summary},
				{"Scope", strings.Join(intent.OwnedScope, ", ")},
			}
			if len(intent.Constraints) > 0 {
				pairs = append(pairs, [2]string{"Constraints", strings.Join(intent.Constraints, "; ")})
			}
			if len(intent.RelatedIntents) > 0 {
				pairs = append(pairs, [2]string{"Related", strings.Join(intent.RelatedIntents, ", ")})
			}
			fmt.Print(formatter.RenderKeyValues(pairs))

			mappings, err := app.Registry.MappingsByIntent(ctx, intent.ID)
			if err != nil {
				return err
			}
			if len(mappings) > 0 {
				fmt.Println()
				fmt.Println(formatter.Header("Mapped files"))
				for _, m := range mappings {
					fmt.Printf("  %s %s\n", m.RelativePath, formatter.Dim(m.RecordedAt.Format(time.RFC3339)))
				}
			}

			traces, err := app.Traces.ByIntent(intent.ID, 5)
			if err != nil {
				return err
			}
			if len(traces) > 0 {
				fmt.Println()
				fmt.Println(formatter.Header("Recent traces"))
				for _, t := range traces {
					for _, f := range t.Files {
						fmt.Printf("  %s %s %s\n", formatter.Dim(t.Timestamp), f.RelativePath, string(t.MutationClass))
					}
				}
			}
			return nil
		},
	}
}

func newIntentSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <intent-id>",
		Short: "Select the active intent for this session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Routed through the pipeline so intent existence and status
			// are validated the same way as any other gated action.
			_, err := app.Pipeline.Execute(context.Background(), "select_active_intent",
				map[string]any{"intent_id": args[0]},
				func() (any, error) { return nil, nil })
			if err != nil {
				return err
			}
			fmt.Printf("Active intent set to %s\n", formatter.Bold(args[0]))
			return nil
		},
	}
}

func newIntentCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <intent-id>",
		Short: "Mark an intent completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			intent, err := app.Registry.GetIntent(ctx, args[0])
			if err != nil {
				return err
			}
			if intent == nil {
				return fmt.Errorf("intent %s not found", args[0])
			}
			intent.Status = domain.IntentCompleted
			if err := app.Registry.UpdateIntent(ctx, intent); err != nil {
				return err
			}
			fmt.Printf("Intent %s marked %s\n", intent.ID, formatter.StatusPill(domain.IntentCompleted))
			return nil
		},
	}
}
