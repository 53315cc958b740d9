package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
	*LabelRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return NewRepositoryWithClock(db, time.Now)
}

// NewRepositoryWithClock is NewRepository with an injectable clock for timestamps.
func NewRepositoryWithClock(db *sql.DB, now func() time.Time) *Repository {
	return &Repository{
		TaskRepo:  &TaskRepo{db: db, now: now},
		LabelRepo: &LabelRepo{db: db, now: now},
	}
}

// Wrapper methods for TaskRepo to maintain the DataStore API
func (r *Repository) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	return r.TaskRepo.GetAll(ctx)
}

func (r *Repository) GetTasksByStatus(ctx context.Context, status models.Status) ([]*models.Task, error) {
	return r.TaskRepo.GetByStatus(ctx, status)
}

func (r *Repository) GetTasksByLabel(ctx context.Context, label string) ([]*models.Task, error) {
	return r.TaskRepo.GetByLabel(ctx, label)
}

func (r *Repository) GetTasksByStatusAndLabel(ctx context.Context, status models.Status, label string) ([]*models.Task, error) {
	return r.TaskRepo.GetByStatusAndLabel(ctx, status, label)
}

func (r *Repository) CreateTask(ctx context.Context, title, description string, labels []string) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, title, description, labels)
}

func (r *Repository) UpdateTaskDetails(ctx context.Context, id int, title, description string) error {
	return r.TaskRepo.UpdateDetails(ctx, id, title, description)
}

func (r *Repository) SetTaskLabels(ctx context.Context, id int, labels []string) error {
	return r.TaskRepo.SetLabels(ctx, id, labels)
}

func (r *Repository) DeleteTask(ctx context.Context, id int) (bool, error) {
	return r.TaskRepo.Delete(ctx, id)
}

func (r *Repository) MoveTask(ctx context.Context, id int, status models.Status, index int) (*models.StatusChange, error) {
	return r.TaskRepo.Move(ctx, id, status, index)
}

// Wrapper methods for LabelRepo to maintain the DataStore API
func (r *Repository) CreateLabel(ctx context.Context, name, color string) (*models.Label, error) {
	return r.LabelRepo.Create(ctx, name, color)
}

func (r *Repository) GetAllLabels(ctx context.Context) ([]*models.Label, error) {
	return r.LabelRepo.GetAll(ctx)
}

func (r *Repository) GetLabelByName(ctx context.Context, name string) (*models.Label, error) {
	return r.LabelRepo.GetByName(ctx, name)
}

func (r *Repository) DeleteLabel(ctx context.Context, name string) error {
	return r.LabelRepo.Delete(ctx, name)
}

func (r *Repository) MissingLabels(ctx context.Context, names []string) ([]string, error) {
	return r.LabelRepo.Missing(ctx, names)
}

func (r *Repository) SeedLabels(ctx context.Context, labels []models.Label) (int, error) {
	return r.LabelRepo.SeedDefaults(ctx, labels)
}
