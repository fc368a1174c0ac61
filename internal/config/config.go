package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// OrchestrationDirName is the workspace subdirectory holding all warden
// state: the intent document, the file map index, and the audit trail.
const OrchestrationDirName = ".orchestration"

// Config holds all configuration for the warden pipeline.
type Config struct {
	// WorkspaceRoot is the directory whose files the pipeline guards.
	WorkspaceRoot string
	// ModelIdentifier is recorded as the AI contributor on trace entries.
	ModelIdentifier string
	// ApprovalTimeout bounds how long a destructive-command approval request
	// may block. Zero means wait indefinitely.
	ApprovalTimeout time.Duration
	// LogPipeline enables slog output for pipeline events on stderr.
	LogPipeline bool
}

// Default returns a Config with sensible defaults, rooted at the current
// working directory.
func Default() Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return Config{
		WorkspaceRoot:   wd,
		ModelIdentifier: "warden-ai",
		ApprovalTimeout: 0,
		LogPipeline:     false,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("WARDEN_WORKSPACE"); v != "" {
		cfg.WorkspaceRoot = v
	}
	if v := os.Getenv("WARDEN_MODEL_ID"); v != "" {
		cfg.ModelIdentifier = v
	}
	if v := os.Getenv("WARDEN_APPROVAL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			cfg.ApprovalTimeout = d
		}
	}
	if v := os.Getenv("WARDEN_LOG"); v != "" {
		cfg.LogPipeline, _ = strconv.ParseBool(v)
	}

	return cfg
}

// OrchestrationDir returns the absolute path of the warden state directory.
func (c Config) OrchestrationDir() string {
	return filepath.Join(c.WorkspaceRoot, OrchestrationDirName)
}

// IntentsPath returns the path of the intent document store.
func (c Config) IntentsPath() string {
	return filepath.Join(c.OrchestrationDir(), "active_intents.yaml")
}

// MapDBPath returns the path of the structured file-to-intent index.
func (c Config) MapDBPath() string {
	return filepath.Join(c.OrchestrationDir(), "intent_map.db")
}

// MapMarkdownPath returns the path of the human-readable map projection.
func (c Config) MapMarkdownPath() string {
	return filepath.Join(c.OrchestrationDir(), "intent_map.md")
}

// TracePath returns the path of the append-only audit trail.
func (c Config) TracePath() string {
	return filepath.Join(c.OrchestrationDir(), "agent_trace.jsonl")
}
