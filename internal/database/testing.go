package database

import (
	"context"
	"os"
	"testing"
	"time"
)

// testDatabaseEnv names the DSN used by integration tests. Tests that need
// a live database skip when it is unset.
const testDatabaseEnv = "TEST_DATABASE_URL"

// SetupTestDB opens a pool against the integration test database, skipping
// the test when TEST_DATABASE_URL is not set. Migrations are expected to be
// applied beforehand with the migrate CLI.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv(testDatabaseEnv)
	if dsn == "" {
		t.Skipf("integration test, set %s to run", testDatabaseEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := NewDB(ctx, dsn, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("failed to create test database connection: %v", err)
	}

	verifyCtx, verifyCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer verifyCancel()
	if err := db.Ping(verifyCtx); err != nil {
		db.Close()
		t.Fatalf("failed to ping test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the database connection cleanly
func TeardownTestDB(t *testing.T, db *DB) {
	t.Helper()
	db.Close()
}
