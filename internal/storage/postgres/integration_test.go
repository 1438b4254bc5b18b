package postgres

import (
	"os"
	"testing"

	"github.com/julianstephens/campusbuddy/internal/storage/storagetest"
)

// Set POSTGRES_TEST_URL to run, e.g.
// POSTGRES_TEST_URL="postgres://student@localhost:5432/campusbuddy_test?sslmode=disable"
func TestStoreIntegration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() {
		if store.db != nil {
			store.db.Exec("DELETE FROM kv")
		}
		store.Close()
	})
	if _, err := store.db.Exec("DELETE FROM kv"); err != nil {
		t.Fatalf("failed to reset kv: %v", err)
	}

	storagetest.Run(t, store)

	current, _, err := store.SchemaStatus()
	if err != nil || !current {
		t.Errorf("SchemaStatus() = %v, %v", current, err)
	}
}
