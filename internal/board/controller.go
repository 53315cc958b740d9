// Package board implements the board controller: the add, delete,
// drag-and-drop and filter flows on top of the task and label services, plus
// the render model a presentation layer draws.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
)

// ErrStaleSnapshot reports a change that was committed but whose snapshot
// reload failed. Board still shows the state from before the change.
var ErrStaleSnapshot = errors.New("board snapshot is stale")

// Input is the add-task form state owned by the presentation layer
type Input struct {
	Text        string
	Description string
	Labels      []string
}

// DropEvent is delivered by the presentation layer when a dragged card is
// released over a column
type DropEvent struct {
	TaskID   int    // Dragged task, 0 to use the task passed to BeginDrag
	Column   string // Destination status identifier
	PointerY float64
	Siblings []Sibling // Geometry of the cards currently rendered in the destination column
}

// Controller owns the board snapshot and serializes every flow
type Controller struct {
	mu sync.Mutex

	tasks     taskservice.Service
	labels    labelservice.Service
	publisher events.EventPublisher
	logger    *slog.Logger

	deleteDelay  time.Duration
	defaultLabel string

	filter   Filter
	snapshot Board
	dragging int

	// armed is true while the last observed board was not all done; the
	// completion event fires only when armed
	armed bool
}

// New creates a controller. Call Refresh before reading Board.
func New(tasks taskservice.Service, labels labelservice.Service, opts ...Option) *Controller {
	c := &Controller{
		tasks:        tasks,
		labels:       labels,
		logger:       slog.Default(),
		defaultLabel: models.DefaultLabelName,
		armed:        true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.snapshot = buildBoard(nil, nil)
	return c
}

// ============================================================================
// Read side
// ============================================================================

// Board returns a deep copy of the current render model
func (c *Controller) Board() Board {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot.clone()
}

// Filter returns the active filter
func (c *Controller) Filter() Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// NewInput returns an empty add form with the default label preselected
func (c *Controller) NewInput() *Input {
	in := &Input{}
	c.resetInput(in)
	return in
}

// Refresh reloads the snapshot from the store
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx, c.filter)
}

// ============================================================================
// Add / Delete flows
// ============================================================================

// Add creates a task from the form. Blank text is ignored: no task, no
// error, the form is left as is. On success the form is cleared.
func (c *Controller) Add(ctx context.Context, in *Input) (*models.Task, error) {
	if in == nil || strings.TrimSpace(in.Text) == "" {
		return nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	task, err := c.tasks.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:       in.Text,
		Description: in.Description,
		Labels:      in.Labels,
	})
	if err != nil {
		return nil, err
	}

	c.resetInput(in)
	if err := c.refreshLocked(ctx, c.filter); err != nil {
		return task, stale(err)
	}
	return task, nil
}

// Delete removes a task after the configured delay. Unknown tasks are a no-op.
func (c *Controller) Delete(ctx context.Context, taskID int) error {
	if c.deleteDelay > 0 {
		timer := time.NewTimer(c.deleteDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.tasks.DeleteTask(ctx, taskID); err != nil {
		return err
	}
	if err := c.refreshLocked(ctx, c.filter); err != nil {
		return stale(err)
	}
	return nil
}

// ============================================================================
// Drag-and-drop flow
// ============================================================================

// BeginDrag records the card being dragged
func (c *Controller) BeginDrag(taskID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = taskID
}

// CancelDrag forgets the dragged card (drag ended without a drop)
func (c *Controller) CancelDrag() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = 0
}

// Dragging returns the dragged task, if any
func (c *Controller) Dragging() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragging, c.dragging != 0
}

// Drop moves the dragged task into the destination column at the position
// implied by the pointer. On failure the snapshot is left untouched.
func (c *Controller) Drop(ctx context.Context, ev DropEvent) (*models.StatusChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	taskID := ev.TaskID
	if taskID == 0 {
		taskID = c.dragging
	}
	c.dragging = 0

	if taskID <= 0 {
		return nil, models.ErrInvalidTaskID
	}

	status, err := models.ParseStatus(ev.Column)
	if err != nil {
		return nil, err
	}

	index := models.AppendPosition
	if before := insertBefore(taskID, ev.PointerY, ev.Siblings); before != 0 {
		index, err = c.indexBefore(ctx, taskID, status, before)
		if err != nil {
			return nil, err
		}
	}

	return c.moveLocked(ctx, taskID, status, index)
}

// Move sets a task's status and places it at index among the other tasks of
// the column (models.AppendPosition appends). When the move commits but the
// reload fails, the change is returned together with ErrStaleSnapshot.
func (c *Controller) Move(ctx context.Context, taskID int, status models.Status, index int) (*models.StatusChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moveLocked(ctx, taskID, status, index)
}

// MoveBefore places a task in status directly above task before. A before
// task outside that column appends.
func (c *Controller) MoveBefore(ctx context.Context, taskID int, status models.Status, before int) (*models.StatusChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	index, err := c.indexBefore(ctx, taskID, status, before)
	if err != nil {
		return nil, err
	}
	return c.moveLocked(ctx, taskID, status, index)
}

func (c *Controller) moveLocked(ctx context.Context, taskID int, status models.Status, index int) (*models.StatusChange, error) {
	change, err := c.tasks.MoveTask(ctx, taskservice.MoveTaskRequest{
		TaskID: taskID,
		Status: status,
		Index:  index,
	})
	if err != nil {
		c.logger.Warn("move rejected", "task_id", taskID, "status", status, "error", err)
		return nil, err
	}

	if change.AllDone && c.armed {
		c.armed = false
		c.logger.Info("board completed", "task_id", taskID)
		events.Publish(c.publisher, events.Event{
			Type:   events.EventBoardCompleted,
			TaskID: taskID,
			Status: string(status),
		})
	}

	if err := c.refreshLocked(ctx, c.filter); err != nil {
		return change, stale(err)
	}
	return change, nil
}

// indexBefore translates "insert before task before" into an index among
// the other tasks of the full destination column. The rendered siblings may
// be a filtered subset of that column.
func (c *Controller) indexBefore(ctx context.Context, taskID int, status models.Status, before int) (int, error) {
	column, err := c.tasks.GetByStatus(ctx, status)
	if err != nil {
		return 0, err
	}

	i := 0
	for _, t := range column {
		if t.ID == taskID {
			continue
		}
		if t.ID == before {
			return i, nil
		}
		i++
	}
	// Stale geometry: the sibling left the column
	return models.AppendPosition, nil
}

// ============================================================================
// Filter flow
// ============================================================================

// SetFilter changes the visible task set. An invalid status leaves the
// current filter in place.
func (c *Controller) SetFilter(ctx context.Context, f Filter) error {
	if _, err := f.normalize(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.refreshLocked(ctx, f); err != nil {
		return err
	}
	c.filter = f
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

func (c *Controller) refreshLocked(ctx context.Context, f Filter) error {
	n, err := f.normalize()
	if err != nil {
		return err
	}

	var tasks []*models.Task
	switch {
	case n.status != "" && n.label != "":
		tasks, err = c.tasks.GetByStatusAndLabel(ctx, n.status, n.label)
	case n.status != "":
		tasks, err = c.tasks.GetByStatus(ctx, n.status)
	case n.label != "":
		tasks, err = c.tasks.GetByLabel(ctx, n.label)
	default:
		tasks, err = c.tasks.GetAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	labels, err := c.labels.GetAllLabels(ctx)
	if err != nil {
		return fmt.Errorf("failed to load labels: %w", err)
	}
	colors := make(map[string]string, len(labels))
	for _, l := range labels {
		colors[l.Name] = l.Color
	}

	total, done, err := c.tasks.GetCompletion(ctx)
	if err != nil {
		return fmt.Errorf("failed to count tasks: %w", err)
	}

	b := buildBoard(tasks, colors)
	b.Filter = f
	b.Total = total
	b.Done = done
	b.AllDone = total > 0 && total == done

	c.snapshot = b
	c.armed = !b.AllDone
	return nil
}

func stale(err error) error {
	return fmt.Errorf("%w: %w", ErrStaleSnapshot, err)
}

func (c *Controller) resetInput(in *Input) {
	in.Text = ""
	in.Description = ""
	in.Labels = nil
	if c.defaultLabel != "" {
		in.Labels = []string{c.defaultLabel}
	}
}
