package hooks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wardenlabs/warden/internal/domain"
)

// traceLoggerHook appends one audit entry for every executed mutation,
// success or failure. Runs in the post chain, so its own failures are
// logged and suppressed by the orchestrator.
type traceLoggerHook struct {
	traces          TraceStore
	revisions       RevisionSource
	modelIdentifier string
	workspaceRoot   string
}

func (h *traceLoggerHook) Name() string { return "trace_logger" }

func (h *traceLoggerHook) Run(ctx context.Context, hc *Context, result Result) error {
	if !IsMutatingTool(hc.ToolName) {
		return nil
	}
	if hc.IntentID == "" {
		return nil
	}

	args, ok := hc.Args.(*WriteFileArgs)
	if !ok {
		return nil
	}

	content := args.Content
	target := args.FilePath
	if !filepath.IsAbs(target) {
		target = filepath.Join(h.workspaceRoot, target)
	}
	// Hash what actually landed on disk when the file is readable.
	if data, err := os.ReadFile(target); err == nil {
		content = string(data)
	}

	entry := domain.TraceEntry{
		ID:            "trace-" + uuid.New().String(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		VCS:           domain.VCSInfo{RevisionID: h.revisions.Revision(ctx)},
		IntentID:      hc.IntentID,
		MutationClass: h.mutationClass(hc.ToolName, args),
		Files: []domain.FileTrace{
			{
				RelativePath: args.FilePath,
				Conversations: []domain.ConversationTrace{
					{
						URL: sessionOrDefault(args.SessionID),
						Contributor: domain.Contributor{
							EntityType:      domain.EntityAI,
							ModelIdentifier: h.modelIdentifier,
						},
						Ranges: []domain.ContentRange{
							{
								StartLine:   1,
								EndLine:     countLines(content),
								ContentHash: domain.ContentHash([]byte(content)),
							},
						},
						Related: []domain.RelatedRef{
							{Type: domain.RelatedIntent, Value: hc.IntentID},
						},
					},
				},
			},
		},
	}

	return h.traces.Append(entry)
}

// mutationClass uses the caller-supplied class when valid, otherwise infers
// a coarse one from the tool.
func (h *traceLoggerHook) mutationClass(toolName string, args *WriteFileArgs) domain.MutationClass {
	if domain.ValidMutationClasses[args.MutationClass] {
		return domain.MutationClass(args.MutationClass)
	}
	switch toolName {
	case ToolWriteFile:
		return domain.MutationASTRefactor
	case ToolCreateFile:
		return domain.MutationIntentEvolution
	default:
		return domain.MutationBugFix
	}
}

func sessionOrDefault(sessionID string) string {
	if sessionID != "" {
		return sessionID
	}
	return "default"
}

func countLines(content string) int {
	return strings.Count(content, "\n") + 1
}
