package hooks

import "context"

// intentMapperHook records which file was touched under which intent after
// every invocation. No-op without a resolved intent or a file target.
type intentMapperHook struct {
	intents IntentStore
}

func (h *intentMapperHook) Name() string { return "intent_mapper" }

func (h *intentMapperHook) Run(ctx context.Context, hc *Context, result Result) error {
	if hc.IntentID == "" {
		return nil
	}
	target := TargetPath(hc.Args)
	if target == "" {
		return nil
	}
	return h.intents.AddFileToIntentMap(ctx, hc.IntentID, target)
}
