package database

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
	_ "modernc.org/sqlite"
)

// TestBoardSurvivesRestart verifies that tasks, positions, labels and
// timestamps survive closing and reopening the database file.
func TestBoardSurvivesRestart(t *testing.T) {
	db, path := setupTestDBFile(t)
	start := time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)
	repo := NewRepositoryWithClock(db, stepClock(start))
	ctx := context.Background()

	createTestLabels(t, repo, "important", "urgent")

	a, err := repo.CreateTask(ctx, "Buy milk", "two litres", []string{"important"})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	b, _ := repo.CreateTask(ctx, "Walk dog", "", []string{"urgent"})
	c, _ := repo.CreateTask(ctx, "Call mom", "", nil)

	if _, err := repo.MoveTask(ctx, c.ID, models.StatusInProgress, models.AppendPosition); err != nil {
		t.Fatalf("Failed to move task: %v", err)
	}
	if _, err := repo.MoveTask(ctx, b.ID, models.StatusTodo, 0); err != nil {
		t.Fatalf("Failed to reorder task: %v", err)
	}

	db = closeAndReopenDB(t, db, path)
	repo = NewRepository(db)

	todo, err := repo.GetTasksByStatus(ctx, models.StatusTodo)
	if err != nil {
		t.Fatalf("Failed to get tasks after restart: %v", err)
	}
	if ids := taskIDs(todo); len(ids) != 2 || ids[0] != b.ID || ids[1] != a.ID {
		t.Errorf("Expected todo order [%d %d] after restart, got %v", b.ID, a.ID, ids)
	}

	inProgress, _ := repo.GetTasksByStatus(ctx, models.StatusInProgress)
	if ids := taskIDs(inProgress); len(ids) != 1 || ids[0] != c.ID {
		t.Errorf("Expected [%d] in progress after restart, got %v", c.ID, ids)
	}

	reloaded, err := repo.GetTaskByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("Failed to reload task: %v", err)
	}
	if reloaded.Description != "two litres" || !reloaded.HasLabel("important") {
		t.Errorf("Task fields lost across restart: %+v", reloaded)
	}
	if !reloaded.CreatedAt.Equal(a.CreatedAt) {
		t.Errorf("Expected created_at %v to round-trip, got %v", a.CreatedAt, reloaded.CreatedAt)
	}

	labels, _ := repo.GetAllLabels(ctx)
	if len(labels) != 2 {
		t.Errorf("Expected 2 labels after restart, got %d", len(labels))
	}

	// New IDs continue after the highest one ever issued
	d, err := repo.CreateTask(ctx, "Read book", "", nil)
	if err != nil {
		t.Fatalf("Failed to create task after restart: %v", err)
	}
	if d.ID <= c.ID {
		t.Errorf("Expected new ID above %d, got %d", c.ID, d.ID)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Second migration failed: %v", err)
	}
}
