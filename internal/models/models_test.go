package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Categories(t *testing.T) {
	tests := []struct {
		err      error
		category error
	}{
		{ErrEmptyTitle, ErrValidation},
		{ErrTitleTooLong, ErrValidation},
		{ErrInvalidTaskID, ErrValidation},
		{ErrInvalidStatus, ErrValidation},
		{ErrUnknownLabel, ErrValidation},
		{ErrEmptyLabelName, ErrValidation},
		{ErrLabelNameTooLong, ErrValidation},
		{ErrTaskNotFound, ErrNotFound},
		{ErrLabelNotFound, ErrNotFound},
		{ErrLabelExists, ErrConflict},
	}

	for _, tt := range tests {
		if !errors.Is(tt.err, tt.category) {
			t.Errorf("Expected %q to wrap %q", tt.err, tt.category)
		}
	}
}

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err             error
		expectedMessage string
	}{
		{ErrTaskNotFound, "task not found"},
		{ErrLabelNotFound, "label not found"},
		{ErrEmptyTitle, "validation failed: task title cannot be empty"},
		{ErrLabelExists, "conflict: label already exists"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expectedMessage {
			t.Errorf("Expected error message '%s', got '%s'", tt.expectedMessage, tt.err.Error())
		}
	}
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := error(&PersistenceError{Op: "create task", Err: cause})

	if !errors.Is(err, ErrPersistence) {
		t.Error("PersistenceError should match ErrPersistence")
	}
	if !errors.Is(err, cause) {
		t.Error("PersistenceError should unwrap to its cause")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("PersistenceError should not match ErrNotFound")
	}
	if err.Error() != "failed to create task: disk I/O error" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestWrapPersistence(t *testing.T) {
	if WrapPersistence("load task", nil) != nil {
		t.Error("Expected nil for nil error")
	}

	if err := WrapPersistence("load task", ErrTaskNotFound); err != ErrTaskNotFound {
		t.Errorf("Expected domain error to pass through, got %v", err)
	}

	cause := errors.New("database is locked")
	err := WrapPersistence("move task", cause)
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected *PersistenceError, got %T", err)
	}
	if pe.Op != "move task" || !errors.Is(err, cause) {
		t.Errorf("Unexpected wrapping: %v", err)
	}
	if WrapPersistence("again", err) != err {
		t.Error("Expected an existing PersistenceError not to be wrapped twice")
	}
}

// ============================================================================
// Status Tests
// ============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected Status
		wantErr  bool
	}{
		{"todo", StatusTodo, false},
		{"TODO", StatusTodo, false},
		{"not_started", StatusTodo, false},
		{"in_progress", StatusInProgress, false},
		{"in-progress", StatusInProgress, false},
		{"In Progress", StatusInProgress, false},
		{"done", StatusDone, false},
		{"completed", StatusDone, false},
		{"", "", true},
		{"archived", "", true},
		{"all", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidStatus) {
				t.Errorf("ParseStatus(%q): expected ErrInvalidStatus, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStatus_Valid(t *testing.T) {
	for i, s := range Statuses() {
		if !s.Valid() {
			t.Errorf("Expected %q to be valid", s)
		}
		if s.Index() != i {
			t.Errorf("Expected %q at index %d, got %d", s, i, s.Index())
		}
	}

	if Status("blocked").Valid() {
		t.Error("Expected 'blocked' to be invalid")
	}
	if Status("").Index() != -1 {
		t.Error("Expected empty status index to be -1")
	}
}

// ============================================================================
// Struct Tests
// ============================================================================

func TestTask_HasLabel(t *testing.T) {
	task := Task{ID: 1, Title: "Buy milk", Status: StatusTodo, Labels: []string{"important", "normal"}}

	if !task.HasLabel("important") {
		t.Error("Expected task to have label 'important'")
	}
	if task.HasLabel("urgent") {
		t.Error("Expected task not to have label 'urgent'")
	}
	if task.GetID() != 1 {
		t.Errorf("Expected GetID 1, got %d", task.GetID())
	}
}

func TestDefaultLabels(t *testing.T) {
	labels := DefaultLabels()
	if len(labels) != 3 {
		t.Fatalf("Expected 3 default labels, got %d", len(labels))
	}

	names := map[string]bool{}
	for _, l := range labels {
		names[l.Name] = true
		if l.Color == "" {
			t.Errorf("Default label %q has no color", l.Name)
		}
	}
	for _, want := range []string{"important", "urgent", "normal"} {
		if !names[want] {
			t.Errorf("Missing default label %q", want)
		}
	}
}
