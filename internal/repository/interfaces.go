package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// FileMapping is one recorded association between an intent and a file it
// has touched.
type FileMapping struct {
	IntentID     string
	RelativePath string
	RecordedAt   time.Time
}

// FileMapRepo is the structured file-to-intent index. It is the source of
// truth for the intent map; the markdown document is generated from it.
type FileMapRepo interface {
	// Add records the association idempotently. Returns true when a new row
	// was inserted, false when the exact (intent, path) pair already existed.
	Add(ctx context.Context, intentID, relativePath string, recordedAt time.Time) (bool, error)
	ListByIntent(ctx context.Context, intentID string) ([]FileMapping, error)
	ListAll(ctx context.Context) ([]FileMapping, error)
	// IntentForFile resolves the intent most recently associated with a path.
	IntentForFile(ctx context.Context, relativePath string) (string, error)
}
