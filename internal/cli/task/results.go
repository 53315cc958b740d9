package task

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// taskResult is a single task returned by add, edit and labels
type taskResult struct {
	*models.Task
	verb string
}

func (r taskResult) Human() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✓ Task '%s' %s (ID: %d)\n", r.Title, r.verb, r.ID)
	fmt.Fprintf(&b, "  Status: %s", styles.StatusTitle(r.Status))
	if len(r.Labels) > 0 {
		fmt.Fprintf(&b, "\n  Labels: %s", strings.Join(r.Labels, ", "))
	}
	return b.String()
}

// taskList is the result of task list
type taskList struct {
	Tasks []*models.Task `json:"tasks"`
}

func (l taskList) IDs() []int {
	ids := make([]int, len(l.Tasks))
	for i, t := range l.Tasks {
		ids[i] = t.ID
	}
	return ids
}

func (l taskList) Human() string {
	if len(l.Tasks) == 0 {
		return "No tasks found"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d tasks:\n", len(l.Tasks))
	for _, t := range l.Tasks {
		fmt.Fprintf(&b, "\n  [%d] %s (%s)", t.ID, t.Title, t.Status)
		if len(t.Labels) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(t.Labels, ", "))
		}
	}
	return b.String()
}

// moveResult is the result of task move
type moveResult struct {
	Task           *models.Task  `json:"task"`
	PreviousStatus models.Status `json:"previous_status"`
	AllDone        bool          `json:"all_done"`
	BoardCompleted bool          `json:"board_completed"` // This move finished the board
}

func (r moveResult) GetID() int {
	return r.Task.ID
}

func (r moveResult) Human() string {
	var b strings.Builder
	if r.PreviousStatus == r.Task.Status {
		fmt.Fprintf(&b, "✓ Task %d reordered in %s (position %d)",
			r.Task.ID, styles.StatusTitle(r.Task.Status), r.Task.Position)
	} else {
		fmt.Fprintf(&b, "✓ Task %d moved from %s to %s",
			r.Task.ID, styles.StatusTitle(r.PreviousStatus), styles.StatusTitle(r.Task.Status))
	}
	if r.BoardCompleted {
		b.WriteString("\n")
		b.WriteString(styles.SuccessStyle.Render("🎉 Every task is done!"))
	}
	return b.String()
}

// deleteResult is the result of task delete
type deleteResult struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

func (r deleteResult) GetID() int {
	return r.ID
}

func (r deleteResult) Human() string {
	return fmt.Sprintf("✓ Task %d deleted", r.ID)
}
