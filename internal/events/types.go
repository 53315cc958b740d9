package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventTaskCreated    EventType = "task_created"
	EventTaskMoved      EventType = "task_moved"
	EventTaskUpdated    EventType = "task_updated"
	EventTaskDeleted    EventType = "task_deleted"
	EventLabelCreated   EventType = "label_created"
	EventLabelDeleted   EventType = "label_deleted"
	EventBoardCompleted EventType = "board_completed"
)

// Event represents a board change notification
type Event struct {
	Type       EventType `json:"type"`
	TaskID     int       `json:"task_id,omitempty"` // Task that changed, 0 for label and board events
	Label      string    `json:"label,omitempty"`   // Label that changed, for label events
	Status     string    `json:"status,omitempty"`  // Status after the change, for task events
	Timestamp  time.Time `json:"timestamp"`         // When the event was published
	SequenceID int64     `json:"sequence_id"`       // Monotonically increasing sequence number for ordering
}
