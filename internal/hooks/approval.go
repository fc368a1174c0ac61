package hooks

import "context"

// Decision is a human operator's answer to a destructive-command approval
// request.
type Decision string

const (
	DecisionAllowOnce     Decision = "allow_once"
	DecisionDeny          Decision = "deny"
	DecisionAllowAndTrust Decision = "allow_and_trust"
)

// Approver is the injected human-approval capability. Approve blocks until
// the operator answers or ctx is done; the gate maps a ctx error to a deny.
type Approver interface {
	Approve(ctx context.Context, command string, c Classification) (Decision, error)
}

// DenyAllApprover denies every request. It is the non-interactive default:
// without an operator present, destructive commands must not run.
type DenyAllApprover struct{}

func (DenyAllApprover) Approve(context.Context, string, Classification) (Decision, error) {
	return DecisionDeny, nil
}

// StaticApprover answers every request with a fixed decision; used in tests.
type StaticApprover Decision

func (s StaticApprover) Approve(context.Context, string, Classification) (Decision, error) {
	return Decision(s), nil
}
