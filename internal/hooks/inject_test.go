package hooks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardenlabs/warden/internal/testutil"
)

func TestContextInjector_AttachesIntentSummary(t *testing.T) {
	intent := testutil.NewTestIntent("payment refactor",
		testutil.WithIntentID("INT-700"),
		testutil.WithScope("src/payments/**"),
		testutil.WithConstraints("no schema changes", "keep API stable"))
	traces := &fakeTraces{}
	require.NoError(t, traces.Append(testutil.NewTestTrace("INT-700", "src/payments/charge.go")))

	hook := &contextInjectorHook{intents: newFakeIntents(intent), traces: traces}
	args := &WriteFileArgs{FilePath: "src/payments/refund.go"}
	hc := &Context{ToolName: ToolWriteFile, IntentID: "INT-700", Args: args}

	require.NoError(t, hook.Run(context.Background(), hc))

	block := args.IntentContext
	assert.Contains(t, block, "<!-- Intent Context -->")
	assert.Contains(t, block, "INT-700 - payment refactor")
	assert.Contains(t, block, "no schema changes")
	assert.Contains(t, block, "src/payments/**")
	assert.Contains(t, block, "src/payments/charge.go")
	assert.Contains(t, block, "<!-- End Intent Context -->")
}

func TestContextInjector_NoIntentIsNoop(t *testing.T) {
	hook := &contextInjectorHook{intents: newFakeIntents(), traces: &fakeTraces{}}
	args := &WriteFileArgs{FilePath: "a.txt"}
	hc := &Context{ToolName: ToolWriteFile, Args: args}

	require.NoError(t, hook.Run(context.Background(), hc))
	assert.Empty(t, args.IntentContext)
}

func TestTraceLogger_InfersMutationClass(t *testing.T) {
	h := &traceLoggerHook{}
	assert.Equal(t, "AST_REFACTOR", string(h.mutationClass(ToolWriteFile, &WriteFileArgs{})))
	assert.Equal(t, "INTENT_EVOLUTION", string(h.mutationClass(ToolCreateFile, &WriteFileArgs{})))
	assert.Equal(t, "BUG_FIX", string(h.mutationClass(ToolEditFile, &WriteFileArgs{})))
	assert.Equal(t, "DOCUMENTATION", string(h.mutationClass(ToolWriteFile, &WriteFileArgs{MutationClass: "DOCUMENTATION"})))
	assert.Equal(t, "AST_REFACTOR", string(h.mutationClass(ToolWriteFile, &WriteFileArgs{MutationClass: "bogus"})))
}
