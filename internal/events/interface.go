package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// Services depend on this rather than on *Bus so tests can record events.
type EventPublisher interface {
	// Publish stamps the event and hands it to every matching subscriber
	Publish(event Event) error

	// Subscribe returns a channel of events of the given types (all types
	// when none are given). The channel is closed when ctx is done or the
	// publisher is closed.
	Subscribe(ctx context.Context, types ...EventType) (<-chan Event, error)

	// Close closes every subscription and rejects further publishes
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
