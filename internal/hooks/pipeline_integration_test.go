package hooks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardenlabs/warden/internal/testutil"
)

// Exercises the full stack: real registry over YAML and SQLite, real audit
// trail, real files on disk.
func TestPipeline_SelectThenWriteEndToEnd(t *testing.T) {
	ws := testutil.NewTestWorkspace(t)
	ctx := context.Background()

	intent := testutil.NewTestIntent("demo the hook pipeline",
		testutil.WithIntentID("INT-001"),
		testutil.WithScope("src/hooks/**"),
		testutil.WithConstraints("output must be deterministic"))
	require.NoError(t, ws.Registry.UpdateIntent(ctx, intent))

	o := NewOrchestrator(Options{
		Intents:         ws.Registry,
		Traces:          ws.Traces,
		Revisions:       staticRev("deadbeef"),
		ModelIdentifier: "test-model",
		WorkspaceRoot:   ws.Cfg.WorkspaceRoot,
	})

	// A write before selection is refused outright.
	_, err := o.Execute(ctx, ToolWriteFile,
		writeArgs("", "src/hooks/demo-output.txt", "hello"), noopExecutor)
	require.ErrorIs(t, err, ErrMissingIntent)

	_, err = o.Execute(ctx, ToolSelectIntent,
		map[string]any{"intent_id": "INT-001"}, noopExecutor)
	require.NoError(t, err)

	target := filepath.Join(ws.Cfg.WorkspaceRoot, "src/hooks/demo-output.txt")
	result, err := o.Execute(ctx, ToolWriteFile,
		writeArgs("", "src/hooks/demo-output.txt", "hello\n"),
		func() (any, error) {
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return nil, err
			}
			return nil, os.WriteFile(target, []byte("hello\n"), 0o644)
		})
	require.NoError(t, err)
	require.NoError(t, result.Err)

	// The file landed.
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(content))

	// Drain the audit queue, then verify every persisted surface.
	ws.Traces.Close()

	entries, err := ws.Traces.ByIntent("INT-001", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "src/hooks/demo-output.txt", entries[0].Files[0].RelativePath)
	assert.Equal(t, "deadbeef", entries[0].VCS.RevisionID)
	assert.Equal(t, "test-model", entries[0].Files[0].Conversations[0].Contributor.ModelIdentifier)

	index, err := ws.Registry.FileIntents(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INT-001", index["src/hooks/demo-output.txt"])

	md, err := os.ReadFile(ws.Cfg.MapMarkdownPath())
	require.NoError(t, err)
	assert.Contains(t, string(md), "## INT-001")
	assert.True(t, strings.Contains(string(md), "- src/hooks/demo-output.txt"))

	// An out-of-scope write under the same session intent is still refused.
	_, err = o.Execute(ctx, ToolWriteFile,
		writeArgs("", "README.md", "nope"), noopExecutor)
	assert.ErrorIs(t, err, ErrScopeViolation)
}
