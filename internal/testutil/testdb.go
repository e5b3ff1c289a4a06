package testutil

import (
	"database/sql"
	"testing"

	"github.com/attune-cli/attune/internal/db"
)

// NewTestDB returns a migrated in-memory SQLite database that is closed
// automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps a test database in the real UnitOfWork implementation.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
