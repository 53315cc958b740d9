package models

import "time"

// Task represents a single card on the board
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	Labels      []string  `json:"labels"`   // Sorted label names, no duplicates
	Position    int       `json:"position"` // Sort index within the status column
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasLabel reports whether the task carries the named label
func (t *Task) HasLabel(name string) bool {
	for _, l := range t.Labels {
		if l == name {
			return true
		}
	}
	return false
}

// GetID returns the task ID (used by quiet CLI output)
func (t *Task) GetID() int {
	return t.ID
}

// StatusChange is the outcome of a status update or move
type StatusChange struct {
	Task     *Task
	Previous Status
	// AllDone is true when, after the change, the board is non-empty and
	// every task is done
	AllDone bool
}

// Changed reports whether the task left its previous column
func (c *StatusChange) Changed() bool {
	return c.Task != nil && c.Task.Status != c.Previous
}
