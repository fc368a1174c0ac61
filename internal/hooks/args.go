package hooks

import (
	"fmt"
)

// Tool names the pipeline recognizes. Anything else passes through the
// pre-hook chain unchecked.
const (
	ToolWriteFile    = "write_file"
	ToolCreateFile   = "create_file"
	ToolEditFile     = "edit_file"
	ToolApplyFix     = "apply_fix"
	ToolExecCommand  = "execute_command"
	ToolBash         = "bash"
	ToolShell        = "shell"
	ToolSelectIntent = "select_active_intent"
)

// IntentContextKey is the reserved argument key the context injector
// attaches its summary block under.
const IntentContextKey = "intent_context"

var mutatingTools = map[string]bool{
	ToolWriteFile:  true,
	ToolCreateFile: true,
	ToolEditFile:   true,
	ToolApplyFix:   true,
}

var commandTools = map[string]bool{
	ToolExecCommand: true,
	ToolBash:        true,
	ToolShell:       true,
}

// IsMutatingTool reports whether the tool writes workspace files.
func IsMutatingTool(name string) bool { return mutatingTools[name] }

// IsCommandTool reports whether the tool executes shell commands.
func IsCommandTool(name string) bool { return commandTools[name] }

// RequiresIntent reports whether the tool may only run under an intent.
func RequiresIntent(name string) bool {
	return mutatingTools[name] || commandTools[name]
}

// ArgsMeta carries the fields shared by every argument variant: the intent
// attribution supplied by the caller and the annotation slot the context
// injector fills for downstream prompt assembly.
type ArgsMeta struct {
	IntentID      string
	SessionID     string
	IntentContext string
}

// Meta returns the shared metadata; it makes every embedding variant
// satisfy ToolArgs.
func (m *ArgsMeta) Meta() *ArgsMeta { return m }

// ToolArgs is the discriminated union of validated tool arguments, keyed by
// tool name at decode time.
type ToolArgs interface {
	Meta() *ArgsMeta
}

// WriteFileArgs are the arguments of the file-mutating tools.
type WriteFileArgs struct {
	ArgsMeta
	FilePath      string
	Content       string
	OriginalHash  string
	MutationClass string
}

// CommandArgs are the arguments of the shell-execution tools.
type CommandArgs struct {
	ArgsMeta
	Command string
}

// SelectIntentArgs are the arguments of the intent-selection action.
type SelectIntentArgs struct {
	ArgsMeta
}

// GenericArgs wraps arguments of tools the pipeline does not police.
type GenericArgs struct {
	ArgsMeta
	Raw map[string]any
}

// DecodeArgs validates an opaque argument mapping into the typed variant
// for the tool. Unknown or malformed shapes for known tools are rejected
// here, at the boundary, instead of being read ad hoc downstream.
func DecodeArgs(toolName string, raw map[string]any) (ToolArgs, error) {
	meta := ArgsMeta{
		IntentID:  optString(raw, "intent_id"),
		SessionID: optString(raw, "session_id"),
	}

	switch {
	case mutatingTools[toolName]:
		args := &WriteFileArgs{
			ArgsMeta:      meta,
			FilePath:      firstString(raw, "file_path", "path", "file"),
			Content:       firstString(raw, "content", "text"),
			OriginalHash:  optString(raw, "original_hash"),
			MutationClass: optString(raw, "mutation_class"),
		}
		if args.FilePath == "" {
			return nil, fmt.Errorf("tool %q requires a file_path argument", toolName)
		}
		return args, nil

	case commandTools[toolName]:
		return &CommandArgs{
			ArgsMeta: meta,
			Command:  firstString(raw, "command", "cmd"),
		}, nil

	case toolName == ToolSelectIntent:
		if meta.IntentID == "" {
			return nil, fmt.Errorf("%s requires an intent_id argument", ToolSelectIntent)
		}
		return &SelectIntentArgs{ArgsMeta: meta}, nil

	default:
		return &GenericArgs{ArgsMeta: meta, Raw: raw}, nil
	}
}

// TargetPath returns the file path a typed argument set targets, or "" when
// the tool has no file target.
func TargetPath(args ToolArgs) string {
	if w, ok := args.(*WriteFileArgs); ok {
		return w.FilePath
	}
	return ""
}

func optString(raw map[string]any, key string) string {
	if raw == nil {
		return ""
	}
	if v, ok := raw[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func firstString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := optString(raw, key); s != "" {
			return s
		}
	}
	return ""
}
