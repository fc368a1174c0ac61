package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeArgs_WriteFile(t *testing.T) {
	args, err := DecodeArgs(ToolWriteFile, map[string]any{
		"file_path":      "src/auth/login.go",
		"content":        "package auth",
		"intent_id":      "INT-001",
		"session_id":     "sess-9",
		"original_hash":  "abc",
		"mutation_class": "BUG_FIX",
	})
	require.NoError(t, err)

	w, ok := args.(*WriteFileArgs)
	require.True(t, ok)
	assert.Equal(t, "src/auth/login.go", w.FilePath)
	assert.Equal(t, "package auth", w.Content)
	assert.Equal(t, "INT-001", w.IntentID)
	assert.Equal(t, "sess-9", w.SessionID)
	assert.Equal(t, "abc", w.OriginalHash)
	assert.Equal(t, "BUG_FIX", w.MutationClass)
}

func TestDecodeArgs_LegacyKeys(t *testing.T) {
	args, err := DecodeArgs(ToolEditFile, map[string]any{
		"path": "a/b.txt",
		"text": "hello",
	})
	require.NoError(t, err)

	w := args.(*WriteFileArgs)
	assert.Equal(t, "a/b.txt", w.FilePath)
	assert.Equal(t, "hello", w.Content)

	args, err = DecodeArgs(ToolBash, map[string]any{"cmd": "ls"})
	require.NoError(t, err)
	assert.Equal(t, "ls", args.(*CommandArgs).Command)
}

func TestDecodeArgs_MutatingWithoutPath(t *testing.T) {
	_, err := DecodeArgs(ToolWriteFile, map[string]any{"content": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file_path")
}

func TestDecodeArgs_SelectRequiresIntentID(t *testing.T) {
	_, err := DecodeArgs(ToolSelectIntent, map[string]any{})
	require.Error(t, err)

	args, err := DecodeArgs(ToolSelectIntent, map[string]any{"intent_id": "INT-007"})
	require.NoError(t, err)
	assert.Equal(t, "INT-007", args.Meta().IntentID)
}

func TestDecodeArgs_UnknownToolIsGeneric(t *testing.T) {
	args, err := DecodeArgs("read_file", map[string]any{"file_path": "a.txt"})
	require.NoError(t, err)

	g, ok := args.(*GenericArgs)
	require.True(t, ok)
	assert.Equal(t, "a.txt", g.Raw["file_path"])
	assert.Empty(t, TargetPath(args), "non-mutating tools have no policed target")
}

func TestRequiresIntent(t *testing.T) {
	assert.True(t, RequiresIntent(ToolWriteFile))
	assert.True(t, RequiresIntent(ToolApplyFix))
	assert.True(t, RequiresIntent(ToolShell))
	assert.False(t, RequiresIntent(ToolSelectIntent))
	assert.False(t, RequiresIntent("read_file"))
}
