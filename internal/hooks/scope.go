package hooks

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/wardenlabs/warden/internal/domain"
)

// scopeHook enforces per-invocation staleness and glob-based path
// authorization against the active intent's owned scope. Applies only to
// mutating tools and requires a resolved intent: enforcement without a
// selected intent is itself a violation.
type scopeHook struct {
	intents       IntentStore
	workspaceRoot string
}

func (h *scopeHook) Name() string { return "scope_authorizer" }

func (h *scopeHook) Run(ctx context.Context, hc *Context) error {
	if !IsMutatingTool(hc.ToolName) {
		return nil
	}

	if hc.IntentID == "" {
		return reject(h.Name(), ErrMissingIntent, false,
			"Scope enforcement requires an active intent. Call select_active_intent first.")
	}

	intent, err := h.intents.GetIntent(ctx, hc.IntentID)
	if err != nil {
		return reject(h.Name(), ErrInternalHook, false,
			"looking up intent %q: %v", hc.IntentID, err)
	}
	if intent == nil {
		return nil
	}

	args, ok := hc.Args.(*WriteFileArgs)
	if !ok {
		return nil
	}

	if args.OriginalHash != "" {
		if err := h.checkStaleness(args); err != nil {
			return err
		}
	}

	normalized := normalizePath(args.FilePath)
	for _, pattern := range intent.OwnedScope {
		if matchScope(pattern, normalized) {
			return nil
		}
	}

	return reject(h.Name(), ErrScopeViolation, false,
		"Scope violation: intent %q is not authorized to modify %q. Granted scope: %s. Request scope expansion via intent update.",
		intent.ID, args.FilePath, strings.Join(intent.OwnedScope, ", "))
}

// checkStaleness compares the supplied previously-observed hash against the
// file's current content. A missing or unreadable file is no conflict: the
// file may not exist yet.
func (h *scopeHook) checkStaleness(args *WriteFileArgs) error {
	target := args.FilePath
	if !filepath.IsAbs(target) {
		target = filepath.Join(h.workspaceRoot, target)
	}

	current, err := os.ReadFile(target)
	if err != nil {
		return nil
	}

	if domain.ContentHash(current) != args.OriginalHash {
		return reject(h.Name(), ErrStaleFile, false,
			"Stale file: %q has changed since the agent read it. Re-read the latest version and replay your changes.",
			args.FilePath)
	}
	return nil
}

// normalizePath produces the slash-separated cleaned form matched against
// scope patterns.
func normalizePath(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// matchScope tests the pattern as given (root-relative) and prefixed with a
// "**/" wildcard (suffix match). Hidden path segments match like any other.
func matchScope(pattern, normalized string) bool {
	if ok, err := doublestar.Match(pattern, normalized); err == nil && ok {
		return true
	}
	if ok, err := doublestar.Match("**/"+pattern, normalized); err == nil && ok {
		return true
	}
	return false
}
