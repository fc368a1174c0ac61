package domain

type IntentStatus string

const (
	IntentPending    IntentStatus = "pending"
	IntentInProgress IntentStatus = "in_progress"
	IntentBlocked    IntentStatus = "blocked"
	IntentCompleted  IntentStatus = "completed"
)

type IntentPriority string

const (
	PriorityCritical IntentPriority = "critical"
	PriorityHigh     IntentPriority = "high"
	PriorityNormal   IntentPriority = "normal"
	PriorityLow      IntentPriority = "low"
)

type MutationClass string

const (
	MutationASTRefactor     MutationClass = "AST_REFACTOR"
	MutationIntentEvolution MutationClass = "INTENT_EVOLUTION"
	MutationBugFix          MutationClass = "BUG_FIX"
	MutationDocumentation   MutationClass = "DOCUMENTATION"
)

type EntityType string

const (
	EntityAI    EntityType = "AI"
	EntityHuman EntityType = "Human"
)

type RelatedRefType string

const (
	RelatedSpecification RelatedRefType = "specification"
	RelatedIntent        RelatedRefType = "intent"
	RelatedConstraint    RelatedRefType = "constraint"
)

// ValidIntentStatuses is the canonical set of accepted intent status strings.
var ValidIntentStatuses = map[string]bool{
	"pending": true, "in_progress": true, "blocked": true, "completed": true,
}

// ValidIntentPriorities is the canonical set of accepted intent priority strings.
var ValidIntentPriorities = map[string]bool{
	"critical": true, "high": true, "normal": true, "low": true,
}

// ValidMutationClasses is the canonical set of accepted mutation class strings.
var ValidMutationClasses = map[string]bool{
	"AST_REFACTOR": true, "INTENT_EVOLUTION": true,
	"BUG_FIX": true, "DOCUMENTATION": true,
}
