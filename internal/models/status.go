package models

import (
	"fmt"
	"strings"
)

// Status is the column a task lives in. Only the three constants below are valid.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses returns every valid status in board order
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// Valid reports whether s is one of the three board statuses
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Index returns the column index of the status, or -1 when invalid
func (s Status) Index() int {
	for i, st := range Statuses() {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts user or wire input into a Status.
// The older column names "not_started" and "completed" are accepted as aliases.
func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	switch normalized {
	case "todo", "not_started":
		return StatusTodo, nil
	case "in_progress", "inprogress", "doing":
		return StatusInProgress, nil
	case "done", "completed":
		return StatusDone, nil
	}
	return "", fmt.Errorf("%w: %q (must be: todo, in_progress, done)", ErrInvalidStatus, raw)
}
