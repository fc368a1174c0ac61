package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wardenlabs/warden/internal/cli"
	"github.com/wardenlabs/warden/internal/config"
	"github.com/wardenlabs/warden/internal/db"
	"github.com/wardenlabs/warden/internal/hooks"
	"github.com/wardenlabs/warden/internal/registry"
	"github.com/wardenlabs/warden/internal/trace"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.OrchestrationDir(), 0o755); err != nil {
		return fmt.Errorf("creating orchestration directory: %w", err)
	}

	// Open the file-to-intent index
	database, err := db.Open(cfg.MapDBPath())
	if err != nil {
		return fmt.Errorf("opening intent map index: %w", err)
	}
	defer database.Close()

	// Wire registry and audit trail
	uow := db.NewSQLiteUnitOfWork(database)
	reg := registry.New(cfg.IntentsPath(), cfg.MapMarkdownPath(), uow)

	var traceLogger *slog.Logger
	var observer hooks.PipelineObserver
	if cfg.LogPipeline {
		traceLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		observer = hooks.NewLogObserver(os.Stderr)
	}
	traces := trace.NewService(cfg.TracePath(), traceLogger)
	defer traces.Close()

	// Wire the hook pipeline
	pipeline := hooks.NewOrchestrator(hooks.Options{
		Intents:         reg,
		Traces:          traces,
		Revisions:       trace.GitRevisionSource{Dir: cfg.WorkspaceRoot},
		Approver:        cli.NewApprover(),
		ApprovalTimeout: cfg.ApprovalTimeout,
		ModelIdentifier: cfg.ModelIdentifier,
		WorkspaceRoot:   cfg.WorkspaceRoot,
		Observer:        observer,
	})

	app := &cli.App{
		Cfg:      cfg,
		Registry: reg,
		Traces:   traces,
		Pipeline: pipeline,
	}

	return cli.NewRootCmd(app).Execute()
}
