package testutil

import (
	"database/sql"
	"testing"

	"github.com/wardenlabs/warden/internal/config"
	"github.com/wardenlabs/warden/internal/db"
	"github.com/wardenlabs/warden/internal/registry"
	"github.com/wardenlabs/warden/internal/trace"
)

// Workspace bundles a temp workspace with a wired registry and trace
// service, the way cmd/warden wires them for real.
type Workspace struct {
	Cfg      config.Config
	DB       *sql.DB
	Registry *registry.Registry
	Traces   *trace.Service
}

// NewTestWorkspace creates a workspace rooted in t.TempDir with all state
// paths under .orchestration. Cleanup closes the trace queue and database.
func NewTestWorkspace(t *testing.T) *Workspace {
	t.Helper()

	cfg := config.Default()
	cfg.WorkspaceRoot = t.TempDir()

	database, err := db.Open(cfg.MapDBPath())
	if err != nil {
		t.Fatalf("failed to open test index database: %v", err)
	}

	uow := db.NewSQLiteUnitOfWork(database)
	reg := registry.New(cfg.IntentsPath(), cfg.MapMarkdownPath(), uow)
	traces := trace.NewService(cfg.TracePath(), nil)

	t.Cleanup(func() {
		traces.Close()
		database.Close()
	})

	return &Workspace{
		Cfg:      cfg,
		DB:       database,
		Registry: reg,
		Traces:   traces,
	}
}
