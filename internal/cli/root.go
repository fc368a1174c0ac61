package cli

import (
	"github.com/spf13/cobra"

	"github.com/wardenlabs/warden/internal/config"
	"github.com/wardenlabs/warden/internal/hooks"
	"github.com/wardenlabs/warden/internal/registry"
	"github.com/wardenlabs/warden/internal/trace"
)

// App holds the wired collaborators CLI commands operate on.
type App struct {
	Cfg      config.Config
	Registry *registry.Registry
	Traces   *trace.Service
	Pipeline *hooks.Orchestrator
}

// NewRootCmd creates the top-level "warden" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "warden",
		Short: "Intent-gated tool execution for autonomous coding agents",
	}

	root.AddCommand(
		newIntentCmd(app),
		newWriteCmd(app),
		newExecCmd(app),
		newTraceCmd(app),
		newMapCmd(app),
	)

	return root
}
