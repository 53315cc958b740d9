package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupTestDB creates an in-memory database with full schema and the
// default labels. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.InitDB(ctx, database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := database.NewRepository(db).SeedLabels(ctx, models.DefaultLabels()); err != nil {
		t.Fatalf("Failed to seed labels: %v", err)
	}

	return db
}

// CreateTestTask inserts a todo task and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, title string, labels ...string) int {
	t.Helper()

	task, err := database.NewRepository(db).CreateTask(context.Background(), title, "", labels)
	if err != nil {
		t.Fatalf("Failed to create task %q: %v", title, err)
	}
	return task.ID
}

// MoveTestTask moves a task to the end of status
func MoveTestTask(t *testing.T, db *sql.DB, taskID int, status models.Status) {
	t.Helper()

	if _, err := database.NewRepository(db).MoveTask(context.Background(), taskID, status, models.AppendPosition); err != nil {
		t.Fatalf("Failed to move task %d: %v", taskID, err)
	}
}

// CreateTestLabel inserts a label
func CreateTestLabel(t *testing.T, db *sql.DB, name, color string) {
	t.Helper()

	if _, err := database.NewRepository(db).CreateLabel(context.Background(), name, color); err != nil {
		t.Fatalf("Failed to create label %q: %v", name, err)
	}
}

// GetTestTask loads a task straight from the store
func GetTestTask(t *testing.T, db *sql.DB, taskID int) *models.Task {
	t.Helper()

	task, err := database.NewRepository(db).GetTaskByID(context.Background(), taskID)
	if err != nil {
		t.Fatalf("Failed to load task %d: %v", taskID, err)
	}
	return task
}
