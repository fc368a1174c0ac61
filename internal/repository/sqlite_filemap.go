package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wardenlabs/warden/internal/db"
)

// SQLiteFileMapRepo implements FileMapRepo using a SQLite database.
type SQLiteFileMapRepo struct {
	db db.DBTX
}

// NewSQLiteFileMapRepo creates a new SQLiteFileMapRepo. Accepts a DBTX so
// callers can scope it to a transaction.
func NewSQLiteFileMapRepo(dbtx db.DBTX) *SQLiteFileMapRepo {
	return &SQLiteFileMapRepo{db: dbtx}
}

func (r *SQLiteFileMapRepo) Add(ctx context.Context, intentID, relativePath string, recordedAt time.Time) (bool, error) {
	query := `INSERT INTO file_intent_map (intent_id, relative_path, recorded_at)
		VALUES (?, ?, ?)
		ON CONFLICT(intent_id, relative_path) DO NOTHING`
	res, err := r.db.ExecContext(ctx, query,
		intentID,
		relativePath,
		recordedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("inserting file mapping: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking file mapping insert: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteFileMapRepo) ListByIntent(ctx context.Context, intentID string) ([]FileMapping, error) {
	query := `SELECT intent_id, relative_path, recorded_at
		FROM file_intent_map WHERE intent_id = ? ORDER BY recorded_at, relative_path`
	rows, err := r.db.QueryContext(ctx, query, intentID)
	if err != nil {
		return nil, fmt.Errorf("listing mappings by intent: %w", err)
	}
	defer rows.Close()
	return r.scanMappings(rows)
}

func (r *SQLiteFileMapRepo) ListAll(ctx context.Context) ([]FileMapping, error) {
	query := `SELECT intent_id, relative_path, recorded_at
		FROM file_intent_map ORDER BY intent_id, recorded_at, relative_path`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing all mappings: %w", err)
	}
	defer rows.Close()
	return r.scanMappings(rows)
}

func (r *SQLiteFileMapRepo) IntentForFile(ctx context.Context, relativePath string) (string, error) {
	query := `SELECT intent_id FROM file_intent_map
		WHERE relative_path = ? ORDER BY recorded_at DESC LIMIT 1`
	var intentID string
	err := r.db.QueryRowContext(ctx, query, relativePath).Scan(&intentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("file mapping for %q: %w", relativePath, ErrNotFound)
		}
		return "", fmt.Errorf("resolving intent for file: %w", err)
	}
	return intentID, nil
}

// scanMappings scans mapping rows from *sql.Rows.
func (r *SQLiteFileMapRepo) scanMappings(rows *sql.Rows) ([]FileMapping, error) {
	var mappings []FileMapping
	for rows.Next() {
		var m FileMapping
		var recordedAtStr string

		if err := rows.Scan(&m.IntentID, &m.RelativePath, &recordedAtStr); err != nil {
			return nil, fmt.Errorf("scanning mapping row: %w", err)
		}

		t, err := time.Parse(time.RFC3339, recordedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing recorded_at: %w", err)
		}
		m.RecordedAt = t

		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mappings: %w", err)
	}
	return mappings, nil
}
