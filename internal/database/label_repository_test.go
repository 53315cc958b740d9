package database

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
	_ "modernc.org/sqlite"
)

func TestLabelCreation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	label, err := repo.CreateLabel(ctx, "important", "#EF4444")
	if err != nil {
		t.Fatalf("Failed to create label: %v", err)
	}
	if label.Name != "important" || label.Color != "#EF4444" {
		t.Errorf("Unexpected label: %+v", label)
	}

	stored, err := repo.GetLabelByName(ctx, "important")
	if err != nil {
		t.Fatalf("Failed to get label: %v", err)
	}
	if stored.Color != "#EF4444" {
		t.Errorf("Expected color #EF4444, got %s", stored.Color)
	}
	if !stored.CreatedAt.Equal(label.CreatedAt) {
		t.Errorf("Expected created_at %v, got %v", label.CreatedAt, stored.CreatedAt)
	}
}

func TestLabelDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	if _, err := repo.CreateLabel(ctx, "urgent", "#F59E0B"); err != nil {
		t.Fatalf("Failed to create label: %v", err)
	}

	_, err := repo.CreateLabel(ctx, "urgent", "#000000")
	if !errors.Is(err, models.ErrLabelExists) {
		t.Fatalf("Expected ErrLabelExists, got %v", err)
	}

	// The first definition wins
	stored, _ := repo.GetLabelByName(ctx, "urgent")
	if stored.Color != "#F59E0B" {
		t.Errorf("Expected original color to be kept, got %s", stored.Color)
	}
}

func TestGetAllLabelsInCreationOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	createTestLabels(t, repo, "zeta", "alpha", "mid")

	labels, err := repo.GetAllLabels(ctx)
	if err != nil {
		t.Fatalf("Failed to get labels: %v", err)
	}

	want := []string{"zeta", "alpha", "mid"}
	if len(labels) != len(want) {
		t.Fatalf("Expected %d labels, got %d", len(want), len(labels))
	}
	for i, name := range want {
		if labels[i].Name != name {
			t.Errorf("Position %d: expected %q, got %q", i, name, labels[i].Name)
		}
	}
}

func TestGetLabelNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetLabelByName(context.Background(), "missing")
	if !errors.Is(err, models.ErrLabelNotFound) {
		t.Errorf("Expected ErrLabelNotFound, got %v", err)
	}
}

func TestDeleteLabelKeepsTaskLabels(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	createTestLabels(t, repo, "important", "urgent")

	task, _ := repo.CreateTask(ctx, "a", "", []string{"important", "urgent"})

	if err := repo.DeleteLabel(ctx, "urgent"); err != nil {
		t.Fatalf("Failed to delete label: %v", err)
	}

	reloaded, err := repo.GetTaskByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("Failed to reload task: %v", err)
	}
	if !reloaded.HasLabel("urgent") {
		t.Errorf("Expected task to keep the dangling label, got %v", reloaded.Labels)
	}

	tagged, _ := repo.GetTasksByLabel(ctx, "urgent")
	if len(tagged) != 1 {
		t.Errorf("Expected filter on deleted label to still match, got %d tasks", len(tagged))
	}

	if err := repo.DeleteLabel(ctx, "urgent"); !errors.Is(err, models.ErrLabelNotFound) {
		t.Errorf("Expected ErrLabelNotFound on second delete, got %v", err)
	}
}

func TestMissingLabels(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	createTestLabels(t, repo, "important", "normal")

	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"all known", []string{"important", "normal"}, nil},
		{"empty input", nil, nil},
		{"one unknown", []string{"important", "someday"}, []string{"someday"}},
		{"duplicates and whitespace", []string{" later ", "later", "normal"}, []string{"later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.MissingLabels(ctx, tt.input)
			if err != nil {
				t.Fatalf("Failed to check labels: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestSeedLabels(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	inserted, err := repo.SeedLabels(ctx, models.DefaultLabels())
	if err != nil {
		t.Fatalf("Failed to seed labels: %v", err)
	}
	if inserted != 3 {
		t.Errorf("Expected 3 labels inserted, got %d", inserted)
	}

	// Seeding again is a no-op
	inserted, err = repo.SeedLabels(ctx, models.DefaultLabels())
	if err != nil {
		t.Fatalf("Failed to reseed labels: %v", err)
	}
	if inserted != 0 {
		t.Errorf("Expected no labels on reseed, got %d", inserted)
	}

	labels, _ := repo.GetAllLabels(ctx)
	if len(labels) != 3 {
		t.Errorf("Expected 3 labels, got %d", len(labels))
	}
}

func TestSeedLabelsSkipsCustomizedBoard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	createTestLabels(t, repo, "mine")

	inserted, err := repo.SeedLabels(ctx, models.DefaultLabels())
	if err != nil {
		t.Fatalf("Failed to seed labels: %v", err)
	}
	if inserted != 0 {
		t.Errorf("Expected seeding to skip a non-empty label table, got %d", inserted)
	}
}
