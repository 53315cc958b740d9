package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.db")

	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, path
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() { _ = newDB.Close() })
	return newDB
}

// stepClock returns a clock that advances one millisecond per call, so
// timestamps in a test are distinct and predictable
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Millisecond)
		return current
	}
}

// createTestLabels defines the given label names with a fixed color
func createTestLabels(t *testing.T, repo *Repository, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := repo.CreateLabel(context.Background(), name, "#123456"); err != nil {
			t.Fatalf("Failed to create label %q: %v", name, err)
		}
	}
}

// taskIDs extracts the IDs of the given tasks, preserving order
func taskIDs[T interface{ GetID() int }](tasks []T) []int {
	ids := make([]int, len(tasks))
	for i, task := range tasks {
		ids[i] = task.GetID()
	}
	return ids
}
