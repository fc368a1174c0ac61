package hooks

import (
	"context"
	"time"
)

// commandGateHook classifies shell commands and blocks destructive ones on
// a synchronous human decision through the injected Approver. Safe and
// unknown commands pass (default-allow policy).
type commandGateHook struct {
	classifier *Classifier
	approver   Approver
	// timeout bounds the blocking approval call; zero waits indefinitely.
	timeout time.Duration
}

func (h *commandGateHook) Name() string { return "command_gate" }

func (h *commandGateHook) Run(ctx context.Context, hc *Context) error {
	if !IsCommandTool(hc.ToolName) {
		return nil
	}

	args, ok := hc.Args.(*CommandArgs)
	if !ok {
		return nil
	}

	classification := h.classifier.Classify(args.Command)
	if classification.Risk != RiskDestructive {
		return nil
	}

	approvalCtx := ctx
	if h.timeout > 0 {
		var cancel context.CancelFunc
		approvalCtx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	decision, err := h.approver.Approve(approvalCtx, args.Command, classification)
	if err != nil {
		return reject(h.Name(), ErrCommandDenied, true,
			"Approval for destructive command %q did not complete: %v. The command was not executed.",
			args.Command, err)
	}

	switch decision {
	case DecisionAllowOnce:
		return nil
	case DecisionAllowAndTrust:
		h.classifier.Trust(args.Command)
		return nil
	default:
		return reject(h.Name(), ErrCommandDenied, true,
			"User denied execution of: %s", args.Command)
	}
}
