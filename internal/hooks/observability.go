package hooks

import (
	"context"
	"io"
	"log/slog"
)

// PipelineEvent captures lightweight execution telemetry for one hook
// pipeline stage.
type PipelineEvent struct {
	Stage      string
	Tool       string
	IntentID   string
	Hook       string
	Err        error
	Suppressed bool
}

// PipelineObserver receives pipeline events.
type PipelineObserver interface {
	ObservePipeline(ctx context.Context, event PipelineEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObservePipeline(context.Context, PipelineEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes pipeline events to the provided writer.
func NewLogObserver(w io.Writer) PipelineObserver {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObservePipeline(ctx context.Context, event PipelineEvent) {
	attrs := []any{
		"stage", event.Stage,
		"tool", event.Tool,
	}
	if event.IntentID != "" {
		attrs = append(attrs, "intent_id", event.IntentID)
	}
	if event.Hook != "" {
		attrs = append(attrs, "hook", event.Hook)
	}
	if event.Suppressed {
		attrs = append(attrs, "suppressed", true)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "hook_pipeline", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "hook_pipeline", attrs...)
}

func observerOrNoop(obs PipelineObserver) PipelineObserver {
	if obs != nil {
		return obs
	}
	return NoopObserver{}
}
