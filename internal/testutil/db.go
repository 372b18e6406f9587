package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/filestore"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(context.Background(), db, database.DialectSQLite); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestRepo returns a relational repository over a fresh in-memory database
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t), database.DialectSQLite)
}

// SetupFileStore returns a file store rooted in a temporary directory
func SetupFileStore(t *testing.T) *filestore.Store {
	t.Helper()
	store, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}
	return store
}

// ForEachBackend runs fn as a subtest against a fresh instance of every
// persistence backend
func ForEachBackend(t *testing.T, fn func(t *testing.T, repo database.DataStore)) {
	t.Helper()

	backends := []struct {
		name  string
		setup func(t *testing.T) database.DataStore
	}{
		{"sqlite", func(t *testing.T) database.DataStore { return SetupTestRepo(t) }},
		{"file", func(t *testing.T) database.DataStore { return SetupFileStore(t) }},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			fn(t, b.setup(t))
		})
	}
}
