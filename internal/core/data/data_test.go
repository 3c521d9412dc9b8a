package data

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Creates a database for testing. For the sake of simplicity, this only uses the
// SQLite engine and creates a new database on every invocation since it is relatively
// cheap to do so.
func setUpDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	testDBFile := filepath.Join(t.TempDir(), "test.db")
	db, err := Initialize(sqlite.Open(testDBFile), false)
	if err != nil {
		t.Fatalf("error initializing test database: %s", err)
	}
	t.Cleanup(func() {
		if err := Shutdown(db); err != nil {
			t.Errorf("error closing test database: %v", err)
		}
	})
	return db
}
