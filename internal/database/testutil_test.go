package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/listo/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := Migrate(context.Background(), db, DialectSQLite); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestRepo wraps an in-memory database in a Repository
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(setupTestDB(t), DialectSQLite)
}

// setupTestDBFile returns the path of a file-based database for testing
// persistence across restarts
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "listo-test.db")
}

// mustCreateList creates a list or fails the test
func mustCreateList(t *testing.T, repo *Repository, name string) *models.List {
	t.Helper()
	list, err := repo.GetOrCreateList(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create list %q: %v", name, err)
	}
	return list
}

// mustCreateTask inserts a task or fails the test
func mustCreateTask(t *testing.T, repo *Repository, list *models.List, task models.Task) *models.Task {
	t.Helper()
	created, err := repo.CreateTask(context.Background(), list, task)
	if err != nil {
		t.Fatalf("Failed to create task %q: %v", task.Description, err)
	}
	return created
}

func strPtr(s string) *string { return &s }

func datePtr(s string) *models.Date {
	d := models.MustParseDate(s)
	return &d
}
