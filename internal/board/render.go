package board

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
)

const dragKeyPrefix = "task-"

// Board is the render model: three status columns in board order
type Board struct {
	Columns [3]Column `json:"columns"`
	Filter  Filter    `json:"filter"`
	Total   int       `json:"total"` // Tasks on the whole board, ignoring the filter
	Done    int       `json:"done"`
	AllDone bool      `json:"all_done"`
}

// Column holds the visible cards of one status
type Column struct {
	Status models.Status `json:"status"`
	Tasks  []Card        `json:"tasks"`
}

// Card is one visible task
type Card struct {
	ID          int           `json:"id"`
	DragKey     string        `json:"drag_key"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Status      models.Status `json:"status"`
	Labels      []CardLabel   `json:"labels"`
}

// CardLabel is a task label with its resolved display color
type CardLabel struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Column returns the column for status, or nil when status is invalid
func (b *Board) Column(status models.Status) *Column {
	i := status.Index()
	if i < 0 {
		return nil
	}
	return &b.Columns[i]
}

// Card finds a visible card by task ID
func (b *Board) Card(taskID int) (*Card, bool) {
	for ci := range b.Columns {
		for ti := range b.Columns[ci].Tasks {
			if b.Columns[ci].Tasks[ti].ID == taskID {
				return &b.Columns[ci].Tasks[ti], true
			}
		}
	}
	return nil, false
}

// clone copies the board down to the card labels
func (b Board) clone() Board {
	for i, col := range b.Columns {
		cards := slices.Clone(col.Tasks)
		for j := range cards {
			cards[j].Labels = slices.Clone(cards[j].Labels)
		}
		b.Columns[i].Tasks = cards
	}
	return b
}

// Len returns the number of visible cards
func (b Board) Len() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Tasks)
	}
	return n
}

// DragKey returns the stable drag source identifier for a task
func DragKey(taskID int) string {
	return dragKeyPrefix + strconv.Itoa(taskID)
}

// ParseDragKey extracts the task ID from a drag key
func ParseDragKey(key string) (int, error) {
	raw, ok := strings.CutPrefix(key, dragKeyPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: drag key %q", models.ErrInvalidTaskID, key)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: drag key %q", models.ErrInvalidTaskID, key)
	}
	return id, nil
}

// buildBoard distributes tasks into their columns, ordered by position
func buildBoard(tasks []*models.Task, colors map[string]string) Board {
	var b Board
	for i, status := range models.Statuses() {
		b.Columns[i] = Column{Status: status, Tasks: []Card{}}
	}

	sorted := make([]*models.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].ID < sorted[j].ID
	})

	for _, t := range sorted {
		col := b.Column(t.Status)
		if col == nil {
			continue
		}
		col.Tasks = append(col.Tasks, newCard(t, colors))
	}
	return b
}

func newCard(t *models.Task, colors map[string]string) Card {
	labels := make([]CardLabel, 0, len(t.Labels))
	for _, name := range t.Labels {
		color, ok := colors[name]
		if !ok {
			// Deleted label still on the task
			color = models.DefaultLabelColor
		}
		labels = append(labels, CardLabel{Name: name, Color: color})
	}
	return Card{
		ID:          t.ID,
		DragKey:     DragKey(t.ID),
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Labels:      labels,
	}
}
