package state

import (
	"slices"
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
)

func pickerLabels() []*models.Label {
	return []*models.Label{
		{Name: "important"},
		{Name: "urgent"},
		{Name: "normal"},
	}
}

// TestReset_PreselectsNames ensures the default label starts checked.
func TestReset_PreselectsNames(t *testing.T) {
	s := NewLabelPickerState()
	s.Reset(pickerLabels(), []string{"important"})

	if got := s.SelectedNames(); !slices.Equal(got, []string{"important"}) {
		t.Errorf("SelectedNames() = %v, want [important]", got)
	}
	if s.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", s.Cursor())
	}
}

// TestReset_ClearsPreviousForm ensures reopening the form forgets old picks.
func TestReset_ClearsPreviousForm(t *testing.T) {
	s := NewLabelPickerState()
	s.Reset(pickerLabels(), nil)
	s.MoveDown()
	s.Toggle()

	s.Reset(pickerLabels(), nil)
	if got := s.SelectedNames(); len(got) != 0 {
		t.Errorf("SelectedNames() after Reset = %v, want none", got)
	}
	if s.Cursor() != 0 {
		t.Errorf("Cursor() after Reset = %d, want 0", s.Cursor())
	}
}

// TestCursor_StopsAtEnds ensures moving past either end is a no-op.
func TestCursor_StopsAtEnds(t *testing.T) {
	s := NewLabelPickerState()
	s.Reset(pickerLabels(), nil)

	s.MoveUp()
	if s.Cursor() != 0 {
		t.Errorf("MoveUp() at top: cursor = %d, want 0", s.Cursor())
	}

	for range 5 {
		s.MoveDown()
	}
	if s.Cursor() != 2 {
		t.Errorf("MoveDown() past bottom: cursor = %d, want 2", s.Cursor())
	}
}

// TestToggle_SelectedNamesInListOrder ensures picks come back in label order.
func TestToggle_SelectedNamesInListOrder(t *testing.T) {
	s := NewLabelPickerState()
	s.Reset(pickerLabels(), nil)

	s.MoveDown()
	s.MoveDown()
	s.Toggle() // normal
	s.MoveUp()
	s.MoveUp()
	s.Toggle() // important

	want := []string{"important", "normal"}
	if got := s.SelectedNames(); !slices.Equal(got, want) {
		t.Errorf("SelectedNames() = %v, want %v", got, want)
	}

	s.Toggle()
	if got := s.SelectedNames(); !slices.Equal(got, []string{"normal"}) {
		t.Errorf("SelectedNames() after untoggle = %v, want [normal]", got)
	}
}

// TestToggle_EmptyPicker ensures toggling with no labels does not panic.
func TestToggle_EmptyPicker(t *testing.T) {
	s := NewLabelPickerState()
	s.Toggle()
	s.MoveDown()

	if got := s.SelectedNames(); got == nil || len(got) != 0 {
		t.Errorf("SelectedNames() = %#v, want empty non-nil", got)
	}
}
