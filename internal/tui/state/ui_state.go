package state

// Mode is the interaction mode of the board screen
type Mode int

const (
	// NormalMode navigates and moves cards
	NormalMode Mode = iota
	// AddMode edits the add-task form
	AddMode
	// HelpMode shows the key reference
	HelpMode
)

// UIState holds the selection and terminal size.
// Selection indexes refer to the visible cards of the board snapshot.
type UIState struct {
	mode           Mode
	selectedColumn int
	selectedTask   int
	width          int
	height         int
}

// NewUIState creates a UIState in normal mode with the first column selected
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Mode returns the current mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode sets the current mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// SelectedColumn returns the selected column index.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn sets the selected column index.
func (s *UIState) SetSelectedColumn(i int) {
	s.selectedColumn = i
}

// SelectedTask returns the selected card index within the selected column.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask sets the selected card index.
func (s *UIState) SetSelectedTask(i int) {
	s.selectedTask = i
}

// Select sets both the column and the card index
func (s *UIState) Select(column, task int) {
	s.selectedColumn = column
	s.selectedTask = task
}

// ClampTask keeps the card index inside a column of n cards
func (s *UIState) ClampTask(n int) {
	if s.selectedTask >= n {
		s.selectedTask = n - 1
	}
	if s.selectedTask < 0 {
		s.selectedTask = 0
	}
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth sets the terminal width.
func (s *UIState) SetWidth(w int) {
	s.width = w
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight sets the terminal height.
func (s *UIState) SetHeight(h int) {
	s.height = h
}
