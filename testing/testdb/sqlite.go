package testdb

import (
	"testing"

	"monolith-service/internal/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// NewSQLite opens a private in-memory SQLite database, creates the tables for
// models and closes the database when the test finishes.
//
// Usage:
//
//	func TestMyHandler(t *testing.T) {
//	    db := testdb.NewSQLite(t, (*MyModel)(nil))
//
//	    t.Run("Test1", func(t *testing.T) {
//	        testdb.TruncateSQLite(t, db, "my_table")
//	        // ... test
//	    })
//	}
func NewSQLite(t *testing.T, models ...interface{}) *bun.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	database, err := db.NewWithDSN(db.DriverSQLite, dsn)
	require.NoError(t, err)
	// The in-memory database lives as long as one connection stays open.
	database.SetMaxOpenConns(1)
	require.NoError(t, database.Ping())

	t.Cleanup(func() { database.Close() })

	migrate(t, database, models...)
	return database
}

// TruncateSQLite empties the tables.
func TruncateSQLite(t *testing.T, database *bun.DB, tables ...string) {
	t.Helper()

	for _, table := range tables {
		_, err := database.Exec("DELETE FROM " + table)
		require.NoError(t, err, "failed to truncate table: %s", table)
	}
}
