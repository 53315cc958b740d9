package database

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
	_ "modernc.org/sqlite"
)

func TestTaskCreation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	createTestLabels(t, repo, "important", "urgent")

	task, err := repo.CreateTask(ctx, "Buy milk", "two litres", []string{"urgent", "important", "urgent"})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	if task.ID <= 0 {
		t.Errorf("Expected positive ID, got %d", task.ID)
	}
	if task.Status != models.StatusTodo {
		t.Errorf("Expected status todo, got %s", task.Status)
	}
	if task.Description != "two litres" {
		t.Errorf("Expected description 'two litres', got '%s'", task.Description)
	}
	if len(task.Labels) != 2 || task.Labels[0] != "important" || task.Labels[1] != "urgent" {
		t.Errorf("Expected sorted, deduplicated labels [important urgent], got %v", task.Labels)
	}
	if task.CreatedAt.IsZero() || !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Errorf("Expected equal non-zero timestamps, got %v / %v", task.CreatedAt, task.UpdatedAt)
	}
}

func TestTaskIDsAreNeverReused(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first, _ := repo.CreateTask(ctx, "first", "", nil)
	second, _ := repo.CreateTask(ctx, "second", "", nil)

	if _, err := repo.DeleteTask(ctx, second.ID); err != nil {
		t.Fatalf("Failed to delete task: %v", err)
	}

	third, err := repo.CreateTask(ctx, "third", "", nil)
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	if !(first.ID < second.ID && second.ID < third.ID) {
		t.Errorf("Expected strictly increasing IDs, got %d, %d, %d", first.ID, second.ID, third.ID)
	}
}

func TestNewTasksAppendToTodoColumn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	a, _ := repo.CreateTask(ctx, "a", "", nil)
	b, _ := repo.CreateTask(ctx, "b", "", nil)
	c, _ := repo.CreateTask(ctx, "c", "", nil)

	todo, err := repo.GetTasksByStatus(ctx, models.StatusTodo)
	if err != nil {
		t.Fatalf("Failed to get tasks: %v", err)
	}

	got := taskIDs(todo)
	want := []int{a.ID, b.ID, c.ID}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
}

func TestMoveTaskBetweenColumns(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	task, _ := repo.CreateTask(ctx, "Buy milk", "", nil)

	change, err := repo.MoveTask(ctx, task.ID, models.StatusInProgress, models.AppendPosition)
	if err != nil {
		t.Fatalf("Failed to move task: %v", err)
	}
	if change.Previous != models.StatusTodo {
		t.Errorf("Expected previous status todo, got %s", change.Previous)
	}
	if change.Task.Status != models.StatusInProgress {
		t.Errorf("Expected status in_progress, got %s", change.Task.Status)
	}
	if change.AllDone {
		t.Error("Board should not be all done")
	}

	todo, _ := repo.GetTasksByStatus(ctx, models.StatusTodo)
	if len(todo) != 0 {
		t.Errorf("Expected empty todo column, got %d tasks", len(todo))
	}

	change, err = repo.MoveTask(ctx, task.ID, models.StatusDone, models.AppendPosition)
	if err != nil {
		t.Fatalf("Failed to move task: %v", err)
	}
	if !change.AllDone {
		t.Error("Expected AllDone after the only task reached done")
	}
}

func TestMoveTaskAllDoneConsidersWholeBoard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	a, _ := repo.CreateTask(ctx, "a", "", nil)
	b, _ := repo.CreateTask(ctx, "b", "", nil)

	change, err := repo.MoveTask(ctx, a.ID, models.StatusDone, models.AppendPosition)
	if err != nil {
		t.Fatalf("Failed to move task: %v", err)
	}
	if change.AllDone {
		t.Error("AllDone must be false while task b is still todo")
	}

	change, err = repo.MoveTask(ctx, b.ID, models.StatusDone, models.AppendPosition)
	if err != nil {
		t.Fatalf("Failed to move task: %v", err)
	}
	if !change.AllDone {
		t.Error("Expected AllDone once both tasks are done")
	}

	change, err = repo.MoveTask(ctx, b.ID, models.StatusTodo, models.AppendPosition)
	if err != nil {
		t.Fatalf("Failed to move task: %v", err)
	}
	if change.AllDone {
		t.Error("AllDone must be false after moving a task back to todo")
	}
}

func TestMoveTaskToIndex(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	a, _ := repo.CreateTask(ctx, "a", "", nil)
	b, _ := repo.CreateTask(ctx, "b", "", nil)
	c, _ := repo.CreateTask(ctx, "c", "", nil)
	d, _ := repo.CreateTask(ctx, "d", "", nil)

	for _, id := range []int{a.ID, b.ID, c.ID} {
		if _, err := repo.MoveTask(ctx, id, models.StatusDone, models.AppendPosition); err != nil {
			t.Fatalf("Failed to move task: %v", err)
		}
	}

	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"insert at top", 0, []int{d.ID, a.ID, b.ID, c.ID}},
		{"insert in middle", 2, []int{a.ID, b.ID, d.ID, c.ID}},
		{"index past end appends", 99, []int{a.ID, b.ID, c.ID, d.ID}},
		{"reorder within column", 1, []int{a.ID, d.ID, b.ID, c.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := repo.MoveTask(ctx, d.ID, models.StatusDone, tt.index); err != nil {
				t.Fatalf("Failed to move task: %v", err)
			}
			done, err := repo.GetTasksByStatus(ctx, models.StatusDone)
			if err != nil {
				t.Fatalf("Failed to get tasks: %v", err)
			}
			got := taskIDs(done)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestMoveTaskSameStatusKeepsPosition(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepositoryWithClock(db, stepClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	ctx := context.Background()

	a, _ := repo.CreateTask(ctx, "a", "", nil)
	b, _ := repo.CreateTask(ctx, "b", "", nil)

	change, err := repo.MoveTask(ctx, a.ID, models.StatusTodo, models.AppendPosition)
	if err != nil {
		t.Fatalf("Failed to move task: %v", err)
	}
	if change.Changed() {
		t.Error("Expected no column change")
	}
	if !change.Task.UpdatedAt.After(a.UpdatedAt) {
		t.Error("Expected updated_at to be refreshed")
	}

	todo, _ := repo.GetTasksByStatus(ctx, models.StatusTodo)
	if len(todo) != 2 || todo[0].ID != a.ID || todo[1].ID != b.ID {
		t.Errorf("Expected order [%d %d], got %v", a.ID, b.ID, taskIDs(todo))
	}
}

func TestMoveTaskNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.MoveTask(context.Background(), 42, models.StatusDone, models.AppendPosition)
	if !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestMoveTaskRejectsInvalidStatusAtSchemaLevel(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	task, _ := repo.CreateTask(ctx, "a", "", nil)

	if _, err := repo.MoveTask(ctx, task.ID, models.Status("archived"), models.AppendPosition); err == nil {
		t.Fatal("Expected CHECK constraint failure for invalid status")
	}

	reloaded, err := repo.GetTaskByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("Failed to reload task: %v", err)
	}
	if reloaded.Status != models.StatusTodo {
		t.Errorf("Expected status to stay todo, got %s", reloaded.Status)
	}
}

func TestFilterQueries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	createTestLabels(t, repo, "important", "urgent")

	a, _ := repo.CreateTask(ctx, "a", "", []string{"important"})
	b, _ := repo.CreateTask(ctx, "b", "", []string{"important", "urgent"})
	c, _ := repo.CreateTask(ctx, "c", "", []string{"urgent"})
	_, _ = repo.CreateTask(ctx, "d", "", nil)

	_, _ = repo.MoveTask(ctx, b.ID, models.StatusDone, models.AppendPosition)
	_, _ = repo.MoveTask(ctx, c.ID, models.StatusDone, models.AppendPosition)

	important, err := repo.GetTasksByLabel(ctx, "important")
	if err != nil {
		t.Fatalf("Failed to filter by label: %v", err)
	}
	if ids := taskIDs(important); len(ids) != 2 || ids[0] != a.ID || ids[1] != b.ID {
		t.Errorf("Expected [%d %d], got %v", a.ID, b.ID, ids)
	}

	doneUrgent, err := repo.GetTasksByStatusAndLabel(ctx, models.StatusDone, "urgent")
	if err != nil {
		t.Fatalf("Failed to filter by status and label: %v", err)
	}
	if ids := taskIDs(doneUrgent); len(ids) != 2 || ids[0] != b.ID || ids[1] != c.ID {
		t.Errorf("Expected [%d %d], got %v", b.ID, c.ID, ids)
	}

	doneImportant, _ := repo.GetTasksByStatusAndLabel(ctx, models.StatusDone, "important")
	if ids := taskIDs(doneImportant); len(ids) != 1 || ids[0] != b.ID {
		t.Errorf("Expected [%d], got %v", b.ID, ids)
	}

	none, _ := repo.GetTasksByLabel(ctx, "normal")
	if len(none) != 0 {
		t.Errorf("Expected no tasks for unused label, got %d", len(none))
	}
}

func TestSetTaskLabelsReplaces(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	createTestLabels(t, repo, "important", "urgent", "normal")

	task, _ := repo.CreateTask(ctx, "a", "", []string{"important", "urgent"})

	if err := repo.SetTaskLabels(ctx, task.ID, []string{"normal"}); err != nil {
		t.Fatalf("Failed to set labels: %v", err)
	}

	reloaded, _ := repo.GetTaskByID(ctx, task.ID)
	if len(reloaded.Labels) != 1 || reloaded.Labels[0] != "normal" {
		t.Errorf("Expected [normal], got %v", reloaded.Labels)
	}

	if err := repo.SetTaskLabels(ctx, 999, []string{"normal"}); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestLabelNamesRoundTripVerbatim(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	names := []string{"a\x1fb", "a,b", `say "hi"`, "ünïcode"}
	createTestLabels(t, repo, names...)

	task, err := repo.CreateTask(ctx, "odd labels", "", names)
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	want := slices.Clone(names)
	slices.Sort(want)
	if !slices.Equal(task.Labels, want) {
		t.Errorf("Labels = %q, want %q", task.Labels, want)
	}

	for _, name := range names {
		tasks, err := repo.GetTasksByLabel(ctx, name)
		if err != nil {
			t.Fatalf("GetTasksByLabel(%q) failed: %v", name, err)
		}
		if len(tasks) != 1 || !slices.Contains(tasks[0].Labels, name) {
			t.Errorf("GetTasksByLabel(%q) returned %v, want the task carrying it", name, tasks)
		}
	}

	bare, _ := repo.CreateTask(ctx, "no labels", "", nil)
	if bare.Labels == nil || len(bare.Labels) != 0 {
		t.Errorf("Expected empty non-nil labels, got %#v", bare.Labels)
	}
}

func TestUpdateTaskDetails(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	task, _ := repo.CreateTask(ctx, "draft", "", nil)
	if err := repo.UpdateTaskDetails(ctx, task.ID, "final", "# Notes"); err != nil {
		t.Fatalf("Failed to update task: %v", err)
	}

	reloaded, _ := repo.GetTaskByID(ctx, task.ID)
	if reloaded.Title != "final" || reloaded.Description != "# Notes" {
		t.Errorf("Unexpected task after update: %+v", reloaded)
	}

	if err := repo.UpdateTaskDetails(ctx, 999, "x", ""); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteTaskIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	createTestLabels(t, repo, "important")

	task, _ := repo.CreateTask(ctx, "a", "", []string{"important"})

	deleted, err := repo.DeleteTask(ctx, task.ID)
	if err != nil || !deleted {
		t.Fatalf("Expected first delete to remove the task, got deleted=%v err=%v", deleted, err)
	}

	deleted, err = repo.DeleteTask(ctx, task.ID)
	if err != nil || deleted {
		t.Errorf("Expected second delete to be a no-op, got deleted=%v err=%v", deleted, err)
	}

	// Label rows cascade with the task
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM task_labels").Scan(&count); err != nil {
		t.Fatalf("Failed to count task labels: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected task_labels to cascade, found %d rows", count)
	}
}

func TestGetCompletion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	total, done, err := repo.GetCompletion(ctx)
	if err != nil {
		t.Fatalf("Failed to get completion: %v", err)
	}
	if total != 0 || done != 0 {
		t.Errorf("Expected 0/0 on empty board, got %d/%d", done, total)
	}

	a, _ := repo.CreateTask(ctx, "a", "", nil)
	_, _ = repo.CreateTask(ctx, "b", "", nil)
	_, _ = repo.MoveTask(ctx, a.ID, models.StatusDone, models.AppendPosition)

	total, done, _ = repo.GetCompletion(ctx)
	if total != 2 || done != 1 {
		t.Errorf("Expected 1/2, got %d/%d", done, total)
	}
}
