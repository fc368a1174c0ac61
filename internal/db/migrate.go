package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// SchemaVersion identifies the current index schema. Stored in schema_info
// so future layouts can detect and upgrade older index files instead of
// re-parsing the markdown projection.
const SchemaVersion = 1

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if _, err := db.Exec(
		`INSERT OR IGNORE INTO schema_info (id, version) VALUES (1, ?)`, SchemaVersion); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schema_info (
		id      INTEGER PRIMARY KEY CHECK(id = 1),
		version INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS file_intent_map (
		intent_id     TEXT NOT NULL,
		relative_path TEXT NOT NULL,
		recorded_at   TEXT NOT NULL,
		PRIMARY KEY (intent_id, relative_path)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_file_intent_map_path ON file_intent_map(relative_path)`,
}
