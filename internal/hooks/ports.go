package hooks

import (
	"context"

	"github.com/wardenlabs/warden/internal/domain"
)

// IntentStore is the slice of the registry the hooks consume.
type IntentStore interface {
	GetIntent(ctx context.Context, id string) (*domain.BusinessIntent, error)
	AddFileToIntentMap(ctx context.Context, intentID, relativePath string) error
}

// TraceStore is the slice of the audit trail the hooks consume.
type TraceStore interface {
	Append(entry domain.TraceEntry) error
	ByIntent(intentID string, limit int) ([]domain.TraceEntry, error)
}

// RevisionSource mirrors trace.RevisionSource without importing it, so the
// hook layer stays decoupled from the trace package's concrete service.
type RevisionSource interface {
	Revision(ctx context.Context) string
}

// PreHook validates or enriches an invocation before the tool runs. A nil
// return lets the chain continue; a *RejectionError (or any error, wrapped
// as InternalHookError by the orchestrator) aborts it.
type PreHook interface {
	Name() string
	Run(ctx context.Context, hc *Context) error
}

// PostHook records the outcome after the tool ran. Returned errors are
// logged and suppressed by the orchestrator.
type PostHook interface {
	Name() string
	Run(ctx context.Context, hc *Context, result Result) error
}
