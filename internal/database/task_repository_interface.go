package database

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTasksByStatus(ctx context.Context, status models.Status) ([]*models.Task, error)
	GetTasksByLabel(ctx context.Context, label string) ([]*models.Task, error)
	GetTasksByStatusAndLabel(ctx context.Context, status models.Status, label string) ([]*models.Task, error)
	GetCompletion(ctx context.Context) (total, done int, err error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, title, description string, labels []string) (*models.Task, error)
	UpdateTaskDetails(ctx context.Context, id int, title, description string) error
	SetTaskLabels(ctx context.Context, id int, labels []string) error
	DeleteTask(ctx context.Context, id int) (bool, error)
}

// TaskMover defines status transitions and ordering.
type TaskMover interface {
	MoveTask(ctx context.Context, id int, status models.Status, index int) (*models.StatusChange, error)
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
	TaskMover
}
