package models

// ============================================================================
// LABEL CONSTANTS
// ============================================================================

// DefaultLabelColor is used when a label is created without a color, and for
// task labels whose definition has since been deleted
const DefaultLabelColor = "#E5E7EB"

// DefaultLabels is the label set seeded into an empty store
func DefaultLabels() []Label {
	return []Label{
		{Name: "important", Color: "#EF4444"},
		{Name: "urgent", Color: "#F59E0B"},
		{Name: "normal", Color: "#3B82F6"},
	}
}

// DefaultLabelName is the label preselected for new tasks
const DefaultLabelName = "important"

// ============================================================================
// VALIDATION LIMITS
// ============================================================================

const (
	MaxTitleLength     = 255
	MaxLabelNameLength = 50
)

// ============================================================================
// POSITION CONSTANTS
// ============================================================================

// AppendPosition asks a move to place the task at the end of its destination column
const AppendPosition = -1
