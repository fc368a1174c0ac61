package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/wardenlabs/warden/internal/domain"
)

// Intent options
type IntentOption func(*domain.BusinessIntent)

func WithIntentID(id string) IntentOption {
	return func(i *domain.BusinessIntent) {
		i.ID = id
	}
}

func WithStatus(s domain.IntentStatus) IntentOption {
	return func(i *domain.BusinessIntent) {
		i.Status = s
	}
}

func WithPriority(p domain.IntentPriority) IntentOption {
	return func(i *domain.BusinessIntent) {
		i.Priority = p
	}
}

func WithScope(patterns ...string) IntentOption {
	return func(i *domain.BusinessIntent) {
		i.OwnedScope = patterns
	}
}

func WithConstraints(constraints ...string) IntentOption {
	return func(i *domain.BusinessIntent) {
		i.Constraints = constraints
	}
}

func WithRelatedIntents(ids ...string) IntentOption {
	return func(i *domain.BusinessIntent) {
		i.RelatedIntents = ids
	}
}

func NewTestIntent(name string, opts ...IntentOption) *domain.BusinessIntent {
	now := time.Now().UTC()
	i := &domain.BusinessIntent{
		ID:         "INT-" + uuid.New().String()[:8],
		Name:       name,
		Summary:    name,
		Status:     domain.IntentInProgress,
		Priority:   domain.PriorityNormal,
		OwnedScope: []string{"**"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// TraceEntry options
type TraceOption func(*domain.TraceEntry)

func WithMutationClass(c domain.MutationClass) TraceOption {
	return func(e *domain.TraceEntry) {
		e.MutationClass = c
	}
}

func WithRevision(rev string) TraceOption {
	return func(e *domain.TraceEntry) {
		e.VCS.RevisionID = rev
	}
}

func NewTestTrace(intentID, relativePath string, opts ...TraceOption) domain.TraceEntry {
	e := domain.TraceEntry{
		ID:            "trace-" + uuid.New().String(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		VCS:           domain.VCSInfo{RevisionID: domain.RevisionUncommitted},
		IntentID:      intentID,
		MutationClass: domain.MutationBugFix,
		Files: []domain.FileTrace{
			{
				RelativePath: relativePath,
				Conversations: []domain.ConversationTrace{
					{
						URL: "default",
						Contributor: domain.Contributor{
							EntityType:      domain.EntityAI,
							ModelIdentifier: "test-model",
						},
						Ranges: []domain.ContentRange{
							{StartLine: 1, EndLine: 1, ContentHash: domain.ContentHash([]byte(""))},
						},
						Related: []domain.RelatedRef{
							{Type: domain.RelatedIntent, Value: intentID},
						},
					},
				},
			},
		},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
