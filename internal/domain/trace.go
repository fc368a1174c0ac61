package domain

// RevisionUncommitted is the VCS revision sentinel recorded when no
// repository revision is available.
const RevisionUncommitted = "uncommitted"

// TraceEntry is one immutable record of an executed mutation. Once appended
// to the audit trail it is never rewritten or deleted.
type TraceEntry struct {
	ID            string        `json:"id"`
	Timestamp     string        `json:"timestamp"`
	VCS           VCSInfo       `json:"vcs"`
	IntentID      string        `json:"intent_id"`
	MutationClass MutationClass `json:"mutation_class"`
	Files         []FileTrace   `json:"files"`
}

type VCSInfo struct {
	RevisionID string `json:"revision_id"`
}

type FileTrace struct {
	RelativePath  string              `json:"relative_path"`
	Conversations []ConversationTrace `json:"conversations"`
}

type ConversationTrace struct {
	URL         string        `json:"url"`
	Contributor Contributor   `json:"contributor"`
	Ranges      []ContentRange `json:"ranges"`
	Related     []RelatedRef  `json:"related"`
}

type Contributor struct {
	EntityType      EntityType `json:"entity_type"`
	ModelIdentifier string     `json:"model_identifier"`
}

type ContentRange struct {
	StartLine   int    `json:"start_line"`
	EndLine     int    `json:"end_line"`
	ContentHash string `json:"content_hash"`
}

type RelatedRef struct {
	Type  RelatedRefType `json:"type"`
	Value string         `json:"value"`
}
