package state

import (
	"slices"

	"github.com/thenoetrevino/tablero/internal/models"
)

// LabelPickerItem is one label in the add form with its selection state
type LabelPickerItem struct {
	Label    *models.Label
	Selected bool
}

// LabelPickerState is the checkbox list of labels in the add form
type LabelPickerState struct {
	items  []LabelPickerItem
	cursor int
}

// NewLabelPickerState creates an empty picker.
func NewLabelPickerState() *LabelPickerState {
	return &LabelPickerState{items: []LabelPickerItem{}}
}

// Reset loads labels and preselects the names in selected
func (s *LabelPickerState) Reset(labels []*models.Label, selected []string) {
	s.items = make([]LabelPickerItem, 0, len(labels))
	for _, l := range labels {
		s.items = append(s.items, LabelPickerItem{
			Label:    l,
			Selected: slices.Contains(selected, l.Name),
		})
	}
	s.cursor = 0
}

// Items returns the picker items.
func (s *LabelPickerState) Items() []LabelPickerItem {
	return s.items
}

// Cursor returns the cursor position.
func (s *LabelPickerState) Cursor() int {
	return s.cursor
}

// MoveUp moves the cursor up, stopping at the first item
func (s *LabelPickerState) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor down, stopping at the last item
func (s *LabelPickerState) MoveDown() {
	if s.cursor < len(s.items)-1 {
		s.cursor++
	}
}

// Toggle flips the item under the cursor
func (s *LabelPickerState) Toggle() {
	if s.cursor < len(s.items) {
		s.items[s.cursor].Selected = !s.items[s.cursor].Selected
	}
}

// SelectedNames returns the selected label names in list order
func (s *LabelPickerState) SelectedNames() []string {
	names := []string{}
	for _, item := range s.items {
		if item.Selected {
			names = append(names, item.Label.Name)
		}
	}
	return names
}
