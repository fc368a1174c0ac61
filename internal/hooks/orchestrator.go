package hooks

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Executor is the wrapped tool implementation: a zero-arg callable
// returning a payload or an error.
type Executor func() (any, error)

// Result is what the executor produced. Executor errors are captured here,
// never re-thrown, so post-hooks and the caller both observe them as data.
type Result struct {
	Output any
	Err    error
}

// Options configure an Orchestrator. Registry and Traces are required; the
// rest default sensibly.
type Options struct {
	Intents         IntentStore
	Traces          TraceStore
	Revisions       RevisionSource
	Approver        Approver
	ApprovalTimeout time.Duration
	ModelIdentifier string
	WorkspaceRoot   string
	Observer        PipelineObserver
}

// Orchestrator owns the invocation lifecycle: it runs the fixed pre-hook
// chain, invokes the wrapped tool, runs the post-hook chain, and returns
// the final outcome. Invocations may run concurrently; each builds its own
// Context. The session intent is last-writer-wins shared state — callers
// that need a stable attribution across concurrent calls pass intent_id
// explicitly.
type Orchestrator struct {
	pre        []PreHook
	post       []PostHook
	classifier *Classifier
	observer   PipelineObserver

	mu            sync.Mutex
	sessionIntent string
}

// NewOrchestrator wires the fixed hook chains: intent validation, scope
// authorization, command gating, context injection before the tool; trace
// logging and map update after it.
func NewOrchestrator(opts Options) *Orchestrator {
	approver := opts.Approver
	if approver == nil {
		approver = DenyAllApprover{}
	}
	classifier := NewClassifier()

	o := &Orchestrator{
		classifier: classifier,
		observer:   observerOrNoop(opts.Observer),
	}
	o.pre = []PreHook{
		&intentValidationHook{intents: opts.Intents},
		&scopeHook{intents: opts.Intents, workspaceRoot: opts.WorkspaceRoot},
		&commandGateHook{classifier: classifier, approver: approver, timeout: opts.ApprovalTimeout},
		&contextInjectorHook{intents: opts.Intents, traces: opts.Traces},
	}
	o.post = []PostHook{
		&traceLoggerHook{
			traces:          opts.Traces,
			revisions:       opts.Revisions,
			modelIdentifier: opts.ModelIdentifier,
			workspaceRoot:   opts.WorkspaceRoot,
		},
		&intentMapperHook{intents: opts.Intents},
	}
	return o
}

// Classifier exposes the session command classifier (its whitelist is
// session state shared across invocations).
func (o *Orchestrator) Classifier() *Classifier { return o.classifier }

// SessionIntent returns the currently selected session intent id.
func (o *Orchestrator) SessionIntent() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sessionIntent
}

// SetSessionIntent records the session intent directly, bypassing the
// pipeline. The select_active_intent action does this as a side effect.
func (o *Orchestrator) SetSessionIntent(intentID string) {
	o.mu.Lock()
	o.sessionIntent = intentID
	o.mu.Unlock()
}

// Execute mediates one tool invocation. The returned error is non-nil only
// for pre-hook rejections (a *RejectionError); executor failures come back
// inside the Result. Post-hook failures never reach the caller.
func (o *Orchestrator) Execute(ctx context.Context, toolName string, rawArgs map[string]any, executor Executor) (Result, error) {
	args, err := DecodeArgs(toolName, rawArgs)
	if err != nil {
		return Result{}, reject("args", ErrInternalHook, false,
			"invalid arguments for %s: %v", toolName, err)
	}

	hc := &Context{
		State:               StatePreHookAnalysis,
		ToolName:            toolName,
		Args:                args,
		AuthorizationStatus: AuthPending,
	}

	// Adopt the session intent unless the invocation carries its own.
	hc.IntentID = o.SessionIntent()
	if meta := args.Meta(); meta.IntentID != "" {
		hc.IntentID = meta.IntentID
	}

	// The designated select action updates the session intent regardless of
	// how the rest of the pipeline turns out.
	if toolName == ToolSelectIntent {
		o.SetSessionIntent(args.Meta().IntentID)
	}

	if rej := o.runPreHooks(ctx, hc); rej != nil {
		return Result{}, rej
	}

	hc.AuthorizationStatus = AuthApproved
	hc.State = StateToolExecution

	var result Result
	if out, err := executor(); err != nil {
		result = Result{Err: err}
	} else {
		result = Result{Output: out}
	}

	hc.State = StatePostHookLogging
	o.runPostHooks(ctx, hc, result)

	hc.State = StateIdle
	return result, nil
}

// runPreHooks executes the pre chain fail-fast: the first failing hook
// aborts the rest.
func (o *Orchestrator) runPreHooks(ctx context.Context, hc *Context) *RejectionError {
	for _, hook := range o.pre {
		err := hook.Run(ctx, hc)
		if err == nil {
			continue
		}

		var rej *RejectionError
		if !errors.As(err, &rej) {
			rej = reject(hook.Name(), ErrInternalHook, false, "hook %s failed: %v", hook.Name(), err)
		}

		hc.AuthorizationStatus = AuthDenied
		if rej.RequiresHumanIntervention {
			// Terminal for this invocation: surfaced, no automatic resume.
			hc.State = StateHumanIntervention
		}
		o.observer.ObservePipeline(ctx, PipelineEvent{
			Stage:    "pre_hook",
			Tool:     hc.ToolName,
			IntentID: hc.IntentID,
			Hook:     rej.Hook,
			Err:      rej,
		})
		return rej
	}
	return nil
}

// runPostHooks executes the post chain best-effort: each failure is logged
// and suppressed, never stopping the remaining chain.
func (o *Orchestrator) runPostHooks(ctx context.Context, hc *Context, result Result) {
	for _, hook := range o.post {
		if err := hook.Run(ctx, hc, result); err != nil {
			o.observer.ObservePipeline(ctx, PipelineEvent{
				Stage:      "post_hook",
				Tool:       hc.ToolName,
				IntentID:   hc.IntentID,
				Hook:       hook.Name(),
				Err:        err,
				Suppressed: true,
			})
		}
	}
}
