package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/reflow/internal/db"
)

// OpenTestDB opens a migrated in-memory database, closed on cleanup.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}
