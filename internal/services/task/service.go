package task

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, taskID int) (*models.Task, error)
	GetAll(ctx context.Context) ([]*models.Task, error)
	GetByStatus(ctx context.Context, status models.Status) ([]*models.Task, error)
	GetByLabel(ctx context.Context, label string) ([]*models.Task, error)
	GetByStatusAndLabel(ctx context.Context, status models.Status, label string) ([]*models.Task, error)
	GetCompletion(ctx context.Context) (total, done int, err error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	SetTaskLabels(ctx context.Context, taskID int, labels []string) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error

	// Task movements
	UpdateTaskStatus(ctx context.Context, taskID int, status models.Status) (*models.StatusChange, error)
	MoveTask(ctx context.Context, req MoveTaskRequest) (*models.StatusChange, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Labels      []string // Names of existing labels
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID      int
	Title       *string
	Description *string
}

// MoveTaskRequest places a task in a status column at Index among the other
// tasks of that column. models.AppendPosition (or any out of range index)
// appends.
type MoveTaskRequest struct {
	TaskID int
	Status models.Status
	Index  int
}

// service implements Service interface
type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new task service
func NewService(repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// GetTask retrieves a single task by ID
func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, models.WrapPersistence("get task", err)
	}
	return task, nil
}

// GetAll retrieves every task in creation order
func (s *service) GetAll(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		return nil, models.WrapPersistence("get tasks", err)
	}
	return tasks, nil
}

// GetByStatus retrieves the tasks of one column in display order
func (s *service) GetByStatus(ctx context.Context, status models.Status) ([]*models.Task, error) {
	if !status.Valid() {
		return nil, invalidStatus(status)
	}
	tasks, err := s.repo.GetTasksByStatus(ctx, status)
	if err != nil {
		return nil, models.WrapPersistence("get tasks by status", err)
	}
	return tasks, nil
}

// GetByLabel retrieves the tasks carrying label. The label need not be
// defined: tasks keep names of deleted labels.
func (s *service) GetByLabel(ctx context.Context, label string) ([]*models.Task, error) {
	tasks, err := s.repo.GetTasksByLabel(ctx, strings.TrimSpace(label))
	if err != nil {
		return nil, models.WrapPersistence("get tasks by label", err)
	}
	return tasks, nil
}

// GetByStatusAndLabel retrieves tasks matching both filters
func (s *service) GetByStatusAndLabel(ctx context.Context, status models.Status, label string) ([]*models.Task, error) {
	if !status.Valid() {
		return nil, invalidStatus(status)
	}
	tasks, err := s.repo.GetTasksByStatusAndLabel(ctx, status, strings.TrimSpace(label))
	if err != nil {
		return nil, models.WrapPersistence("get tasks by status and label", err)
	}
	return tasks, nil
}

// GetCompletion returns the number of tasks and how many of them are done
func (s *service) GetCompletion(ctx context.Context) (total, done int, err error) {
	total, done, err = s.repo.GetCompletion(ctx)
	if err != nil {
		return 0, 0, models.WrapPersistence("count tasks", err)
	}
	return total, done, nil
}

// CreateTask handles task creation with validation and business rules
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}
	if err := s.validateLabels(ctx, req.Labels); err != nil {
		return nil, err
	}

	task, err := s.repo.CreateTask(ctx, title, req.Description, req.Labels)
	if err != nil {
		return nil, models.WrapPersistence("create task", err)
	}

	s.publishTaskEvent(events.EventTaskCreated, task)
	return task, nil
}

// UpdateTask changes a task's title and/or description
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}

	var title string
	if req.Title != nil {
		t, err := validateTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		title = t
	}

	existing, err := s.repo.GetTaskByID(ctx, req.TaskID)
	if err != nil {
		return nil, models.WrapPersistence("get task", err)
	}

	if req.Title == nil && req.Description == nil {
		return existing, nil
	}
	if req.Title == nil {
		title = existing.Title
	}
	description := existing.Description
	if req.Description != nil {
		description = *req.Description
	}

	if err := s.repo.UpdateTaskDetails(ctx, req.TaskID, title, description); err != nil {
		return nil, models.WrapPersistence("update task", err)
	}

	task, err := s.repo.GetTaskByID(ctx, req.TaskID)
	if err != nil {
		return nil, models.WrapPersistence("get task", err)
	}

	s.publishTaskEvent(events.EventTaskUpdated, task)
	return task, nil
}

// SetTaskLabels replaces a task's label set
func (s *service) SetTaskLabels(ctx context.Context, taskID int, labels []string) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if err := s.validateLabels(ctx, labels); err != nil {
		return nil, err
	}

	if err := s.repo.SetTaskLabels(ctx, taskID, labels); err != nil {
		return nil, models.WrapPersistence("set task labels", err)
	}

	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, models.WrapPersistence("get task", err)
	}

	s.publishTaskEvent(events.EventTaskUpdated, task)
	return task, nil
}

// DeleteTask removes a task. Deleting an unknown task is a no-op.
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}

	deleted, err := s.repo.DeleteTask(ctx, taskID)
	if err != nil {
		return models.WrapPersistence("delete task", err)
	}

	if deleted {
		events.Publish(s.eventClient, events.Event{
			Type:   events.EventTaskDeleted,
			TaskID: taskID,
		})
	}
	return nil
}

// UpdateTaskStatus sets a task's status, appending it to the destination
// column when the status changes
func (s *service) UpdateTaskStatus(ctx context.Context, taskID int, status models.Status) (*models.StatusChange, error) {
	return s.MoveTask(ctx, MoveTaskRequest{
		TaskID: taskID,
		Status: status,
		Index:  models.AppendPosition,
	})
}

// MoveTask sets a task's status and its position within the destination column
func (s *service) MoveTask(ctx context.Context, req MoveTaskRequest) (*models.StatusChange, error) {
	if !req.Status.Valid() {
		return nil, invalidStatus(req.Status)
	}
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}

	index := req.Index
	if index < 0 {
		index = models.AppendPosition
	}

	change, err := s.repo.MoveTask(ctx, req.TaskID, req.Status, index)
	if err != nil {
		return nil, models.WrapPersistence("move task", err)
	}

	s.publishTaskEvent(events.EventTaskMoved, change.Task)
	return change, nil
}

// validateTitle trims the title and checks its length in characters
func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// validateLabels ensures every named label is defined
func (s *service) validateLabels(ctx context.Context, labels []string) error {
	if len(labels) == 0 {
		return nil
	}
	missing, err := s.repo.MissingLabels(ctx, labels)
	if err != nil {
		return models.WrapPersistence("check labels", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownLabel, strings.Join(missing, ", "))
	}
	return nil
}

func invalidStatus(status models.Status) error {
	return fmt.Errorf("%w: %q (must be: todo, in_progress, done)", ErrInvalidStatus, string(status))
}

// publishTaskEvent publishes a task event if event client exists
func (s *service) publishTaskEvent(eventType events.EventType, task *models.Task) {
	if task == nil {
		return
	}
	events.Publish(s.eventClient, events.Event{
		Type:   eventType,
		TaskID: task.ID,
		Status: string(task.Status),
	})
}
