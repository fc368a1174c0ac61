package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardenlabs/warden/internal/repository"
	"github.com/wardenlabs/warden/internal/testutil"
)

var recordedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestFileMapAdd_Idempotent(t *testing.T) {
	repo := repository.NewSQLiteFileMapRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	inserted, err := repo.Add(ctx, "INT-001", "src/auth/login.go", recordedAt)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Add(ctx, "INT-001", "src/auth/login.go", recordedAt.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, inserted, "duplicate pair must be a no-op")

	mappings, err := repo.ListByIntent(ctx, "INT-001")
	require.NoError(t, err)
	require.Len(t, mappings, 1)
	assert.Equal(t, "src/auth/login.go", mappings[0].RelativePath)
	assert.Equal(t, recordedAt, mappings[0].RecordedAt, "first recording wins")
}

func TestFileMapAdd_SamePathDifferentIntents(t *testing.T) {
	repo := repository.NewSQLiteFileMapRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, intentID := range []string{"INT-001", "INT-002"} {
		inserted, err := repo.Add(ctx, intentID, "shared.go", recordedAt)
		require.NoError(t, err)
		assert.True(t, inserted)
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "uniqueness is per intent and path pair")
}

func TestFileMapListAll_OrderedByIntent(t *testing.T) {
	repo := repository.NewSQLiteFileMapRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Add(ctx, "INT-B", "b.go", recordedAt)
	require.NoError(t, err)
	_, err = repo.Add(ctx, "INT-A", "a2.go", recordedAt.Add(time.Minute))
	require.NoError(t, err)
	_, err = repo.Add(ctx, "INT-A", "a1.go", recordedAt)
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "INT-A", all[0].IntentID)
	assert.Equal(t, "a1.go", all[0].RelativePath)
	assert.Equal(t, "a2.go", all[1].RelativePath)
	assert.Equal(t, "INT-B", all[2].IntentID)
}

func TestIntentForFile(t *testing.T) {
	repo := repository.NewSQLiteFileMapRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Add(ctx, "INT-001", "src/main.go", recordedAt)
	require.NoError(t, err)
	_, err = repo.Add(ctx, "INT-002", "src/main.go", recordedAt.Add(time.Hour))
	require.NoError(t, err)

	intentID, err := repo.IntentForFile(ctx, "src/main.go")
	require.NoError(t, err)
	assert.Equal(t, "INT-002", intentID, "most recent recording wins")

	_, err = repo.IntentForFile(ctx, "missing.go")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
