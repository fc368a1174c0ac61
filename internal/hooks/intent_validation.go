package hooks

import "context"

// intentValidationHook resolves and validates the intent an invocation is
// attributed to. Tools outside the mutating/command set pass through
// unchecked.
type intentValidationHook struct {
	intents IntentStore
}

func (h *intentValidationHook) Name() string { return "intent_validation" }

func (h *intentValidationHook) Run(ctx context.Context, hc *Context) error {
	// Intent selection itself is validated too, so a bad id fails loudly at
	// selection time instead of on the first gated tool call.
	if !RequiresIntent(hc.ToolName) && hc.ToolName != ToolSelectIntent {
		return nil
	}

	if hc.IntentID == "" {
		return reject(h.Name(), ErrMissingIntent, false,
			"No active intent id provided. Call select_active_intent(intent_id) before executing any code-modifying tools.")
	}

	intent, err := h.intents.GetIntent(ctx, hc.IntentID)
	if err != nil {
		return reject(h.Name(), ErrInternalHook, false,
			"looking up intent %q: %v", hc.IntentID, err)
	}
	if intent == nil {
		return reject(h.Name(), ErrIntentNotFound, false,
			"Intent %q not found in the intent store. Select a valid intent.", hc.IntentID)
	}
	if intent.Completed() {
		return reject(h.Name(), ErrIntentCompleted, false,
			"Intent %q is already completed. Select a new intent or mark it in_progress.", hc.IntentID)
	}

	// Write the resolved id back so later hooks and the caller observe it.
	hc.Args.Meta().IntentID = hc.IntentID
	return nil
}
