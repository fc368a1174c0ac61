package hooks

import (
	"context"
	"fmt"
	"strings"
)

// recentTraceCount is how many audit entries the injector summarizes.
const recentTraceCount = 5

// contextInjectorHook enriches the tool arguments with a human-readable
// summary of the active intent for downstream prompt assembly. Best-effort:
// with no resolvable intent there is nothing to inject and the hook
// succeeds; unexpected internal errors are hook failures.
type contextInjectorHook struct {
	intents IntentStore
	traces  TraceStore
}

func (h *contextInjectorHook) Name() string { return "context_injector" }

func (h *contextInjectorHook) Run(ctx context.Context, hc *Context) error {
	if hc.IntentID == "" {
		return nil
	}

	intent, err := h.intents.GetIntent(ctx, hc.IntentID)
	if err != nil {
		return reject(h.Name(), ErrInternalHook, false,
			"loading intent %q for context injection: %v", hc.IntentID, err)
	}
	if intent == nil {
		return nil
	}

	recent, err := h.traces.ByIntent(hc.IntentID, recentTraceCount)
	if err != nil {
		return reject(h.Name(), ErrInternalHook, false,
			"loading recent traces for %q: %v", hc.IntentID, err)
	}

	var b strings.Builder
	b.WriteString("<!-- Intent Context -->\n")
	fmt.Fprintf(&b, "Intent: %s - %s\n", intent.ID, intent.Name)
	b.WriteString("Constraints:\n")
	for _, c := range intent.Constraints {
		fmt.Fprintf(&b, "  - %s\n", c)
	}
	b.WriteString("Scope:\n")
	for _, s := range intent.OwnedScope {
		fmt.Fprintf(&b, "  - %s\n", s)
	}
	if len(recent) > 0 {
		b.WriteString("Recent traces:\n")
		for _, entry := range recent {
			path := "unknown"
			if len(entry.Files) > 0 {
				path = entry.Files[0].RelativePath
			}
			fmt.Fprintf(&b, "  - %s (%s)\n", path, entry.MutationClass)
		}
	}
	b.WriteString("<!-- End Intent Context -->")

	hc.Args.Meta().IntentContext = b.String()
	return nil
}
