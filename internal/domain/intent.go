package domain

import "time"

// BusinessIntent is an approved, scoped unit of work the agent is permitted
// to pursue. OwnedScope and Constraints are fixed facts consulted by the
// authorization path; only status, priority and timestamps change via an
// explicit update.
type BusinessIntent struct {
	ID                 string         `yaml:"id" json:"id"`
	Name               string         `yaml:"name" json:"name"`
	Summary            string         `yaml:"summary" json:"summary"`
	Description        string         `yaml:"description" json:"description"`
	Status             IntentStatus   `yaml:"status" json:"status"`
	Priority           IntentPriority `yaml:"priority" json:"priority"`
	OwnedScope         []string       `yaml:"owned_scope" json:"owned_scope"`
	Constraints        []string       `yaml:"constraints" json:"constraints"`
	AcceptanceCriteria []string       `yaml:"acceptance_criteria" json:"acceptance_criteria"`
	CreatedAt          time.Time      `yaml:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `yaml:"updated_at" json:"updated_at"`
	RelatedIntents     []string       `yaml:"related_intents" json:"related_intents"`
}

// Completed reports whether the intent can no longer authorize work.
func (i *BusinessIntent) Completed() bool {
	return i.Status == IntentCompleted
}
