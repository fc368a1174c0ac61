package hooks

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingIntent indicates a mutating or command tool ran without a
	// resolvable intent.
	ErrMissingIntent = errors.New("missing intent")

	// ErrIntentNotFound indicates the resolved intent id is unknown to the
	// registry.
	ErrIntentNotFound = errors.New("intent not found")

	// ErrIntentCompleted indicates the resolved intent can no longer
	// authorize work.
	ErrIntentCompleted = errors.New("intent already completed")

	// ErrScopeViolation indicates the target path is outside the intent's
	// owned scope.
	ErrScopeViolation = errors.New("scope violation")

	// ErrStaleFile indicates the target file changed since the agent last
	// observed it.
	ErrStaleFile = errors.New("stale file")

	// ErrCommandDenied indicates a human denied a destructive command.
	ErrCommandDenied = errors.New("command denied")

	// ErrInternalHook indicates an unexpected failure inside a hook.
	ErrInternalHook = errors.New("internal hook error")
)

// RejectionError is the typed failure a pre-hook surfaces to the caller.
// It wraps one of the sentinel errors above, carries the self-describing
// message, and distinguishes rejections that require a human decision.
type RejectionError struct {
	Hook                      string
	Message                   string
	RequiresHumanIntervention bool

	cause error
}

func (e *RejectionError) Error() string { return e.Message }

func (e *RejectionError) Unwrap() error { return e.cause }

// reject builds a RejectionError for the named hook.
func reject(hook string, cause error, requiresHuman bool, format string, args ...any) *RejectionError {
	return &RejectionError{
		Hook:                      hook,
		Message:                   fmt.Sprintf(format, args...),
		RequiresHumanIntervention: requiresHuman,
		cause:                     cause,
	}
}
