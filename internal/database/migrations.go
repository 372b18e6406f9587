package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema holds the DDL per dialect. Only the identity columns differ.
var schema = map[Dialect][]string{
	DialectSQLite: {
		`CREATE TABLE IF NOT EXISTS lists (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			list_id INTEGER NOT NULL,
			description TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			deadline TEXT,
			priority TEXT,
			category TEXT,
			FOREIGN KEY (list_id) REFERENCES lists(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_list ON tasks(list_id, id)`,
	},
	DialectPostgres: {
		`CREATE TABLE IF NOT EXISTS lists (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id SERIAL PRIMARY KEY,
			list_id INTEGER NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
			description TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			deadline TEXT,
			priority TEXT,
			category TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_list ON tasks(list_id, id)`,
	},
}

// Migrate creates the lists and tasks tables if they do not exist.
// It is idempotent and safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	stmts, ok := schema[dialect]
	if !ok {
		return fmt.Errorf("no schema for dialect %q", dialect)
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}
		return nil
	})
}
