package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelSuccess is used for the board completion message
	LevelSuccess
	// LevelError represents error notifications
	LevelError
)

// Notification is a single message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the notifications shown under the board.
// They are cleared on the next key press in normal mode.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add appends a notification.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny reports whether any notification is shown.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// HasLevel reports whether a notification of level is shown.
func (s *NotificationState) HasLevel(level NotificationLevel) bool {
	for _, n := range s.notifications {
		if n.Level == level {
			return true
		}
	}
	return false
}
