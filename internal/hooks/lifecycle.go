package hooks

// State is the lifecycle position of one pipeline invocation.
type State string

const (
	StateIdle              State = "IDLE"
	StateAwaitingIntent    State = "AWAITING_INTENT"
	StatePreHookAnalysis   State = "PRE_HOOK_ANALYSIS"
	StateToolExecution     State = "TOOL_EXECUTION"
	StatePostHookLogging   State = "POST_HOOK_LOGGING"
	StateHumanIntervention State = "HUMAN_INTERVENTION"
)

// AuthStatus records the authorization outcome on a Context.
type AuthStatus string

const (
	AuthPending  AuthStatus = "pending"
	AuthApproved AuthStatus = "approved"
	AuthDenied   AuthStatus = "denied"
)

// Context is the ephemeral per-invocation working state. It is owned by the
// Orchestrator for the duration of one invocation; hooks receive a mutable
// reference and may annotate the arguments but must not change ToolName or
// bypass lifecycle transitions.
type Context struct {
	State               State
	IntentID            string
	ToolName            string
	Args                ToolArgs
	AuthorizationStatus AuthStatus
}
