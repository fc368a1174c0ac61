package trace_test

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardenlabs/warden/internal/domain"
	"github.com/wardenlabs/warden/internal/testutil"
	"github.com/wardenlabs/warden/internal/trace"
)

func newTestService(t *testing.T) (*trace.Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent_trace.jsonl")
	return trace.NewService(path, nil), path
}

func TestService_AppendAndByIntent(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.Append(testutil.NewTestTrace("INT-1", "a.go")))
	require.NoError(t, svc.Append(testutil.NewTestTrace("INT-2", "b.go")))
	require.NoError(t, svc.Append(testutil.NewTestTrace("INT-1", "c.go")))
	svc.Close()

	entries, err := svc.ByIntent("INT-1", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.go", entries[0].Files[0].RelativePath)
	assert.Equal(t, "c.go", entries[1].Files[0].RelativePath)

	entries, err = svc.ByIntent("INT-2", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b.go", entries[0].Files[0].RelativePath)
}

func TestService_ByIntentLimitKeepsLatest(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Append(testutil.NewTestTrace("INT-1", fmt.Sprintf("f%d.go", i))))
	}
	svc.Close()

	entries, err := svc.ByIntent("INT-1", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "f3.go", entries[0].Files[0].RelativePath)
	assert.Equal(t, "f4.go", entries[1].Files[0].RelativePath)
}

func TestService_ConcurrentAppendsStayWhole(t *testing.T) {
	svc, path := newTestService(t)

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = svc.Append(testutil.NewTestTrace("INT-C", fmt.Sprintf("file-%d.go", n)))
		}(i)
	}
	wg.Wait()
	svc.Close()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry domain.TraceEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry),
			"every line must be one complete record")
		assert.Equal(t, "INT-C", entry.IntentID)
		lines++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, writers, lines)
}

func TestService_ByIntentSkipsMalformedLines(t *testing.T) {
	svc, path := newTestService(t)
	require.NoError(t, svc.Append(testutil.NewTestTrace("INT-M", "good1.go")))
	svc.Close()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{truncated garbage\n")
	require.NoError(t, err)
	_, err = f.WriteString("\n")
	require.NoError(t, err)
	entry := testutil.NewTestTrace("INT-M", "good2.go")
	data, err := json.Marshal(entry)
	require.NoError(t, err)
	_, err = f.Write(append(data, '\n'))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	entries, err := svc.ByIntent("INT-M", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "good1.go", entries[0].Files[0].RelativePath)
	assert.Equal(t, "good2.go", entries[1].Files[0].RelativePath)
}

func TestService_MissingLogIsEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	defer svc.Close()

	entries, err := svc.ByIntent("INT-NONE", 0)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestService_AppendAfterClose(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Close()

	err := svc.Append(testutil.NewTestTrace("INT-X", "late.go"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}

func TestService_EntryShape(t *testing.T) {
	svc, path := newTestService(t)
	e := testutil.NewTestTrace("INT-S", "src/x.go",
		testutil.WithMutationClass(domain.MutationDocumentation),
		testutil.WithRevision("abc123"))
	require.NoError(t, svc.Append(e))
	svc.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)

	assert.Contains(t, line, `"intent_id":"INT-S"`)
	assert.Contains(t, line, `"mutation_class":"DOCUMENTATION"`)
	assert.Contains(t, line, `"revision_id":"abc123"`)
	assert.Contains(t, line, `"entity_type":"AI"`)
}
