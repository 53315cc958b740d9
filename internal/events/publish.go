package events

import (
	"log/slog"
)

// Publish sends an event if a publisher is configured.
// Failures are logged, never returned.
func Publish(publisher EventPublisher, event Event) {
	if publisher == nil {
		return // Silently skip if no publisher (e.g., in tests or one-shot CLI runs)
	}

	if err := publisher.Publish(event); err != nil {
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"task_id", event.TaskID,
			"error", err)
	}
}
