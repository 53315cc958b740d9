package events

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// recordingPublisher records published events and can be made to fail
type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (r *recordingPublisher) Publish(event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

// Unused interface methods
func (r *recordingPublisher) Subscribe(ctx context.Context, types ...EventType) (<-chan Event, error) {
	return nil, nil
}
func (r *recordingPublisher) Close() error { return nil }

func TestPublish_NilPublisher(t *testing.T) {
	// Must not panic
	Publish(nil, Event{Type: EventTaskCreated, TaskID: 1})
}

func TestPublish_Delivers(t *testing.T) {
	rec := &recordingPublisher{}

	Publish(rec, Event{Type: EventTaskMoved, TaskID: 3, Status: "done"})

	if len(rec.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(rec.events))
	}
	if rec.events[0].TaskID != 3 || rec.events[0].Status != "done" {
		t.Errorf("Unexpected event: %+v", rec.events[0])
	}
}

func TestPublish_SwallowsErrors(t *testing.T) {
	rec := &recordingPublisher{err: errors.New("simulated publish failure")}

	// Must not panic and has no error to return
	Publish(rec, Event{Type: EventTaskDeleted, TaskID: 9})

	if len(rec.events) != 1 {
		t.Errorf("Expected publish to be attempted once, got %d", len(rec.events))
	}
}

func TestPublish_ClosedBus(t *testing.T) {
	bus := NewBus()
	_ = bus.Close()

	// Logged, not returned
	Publish(bus, Event{Type: EventTaskCreated, TaskID: 1})

	if bus.LastSequence() != 0 {
		t.Errorf("Closed bus should not assign sequence numbers, got %d", bus.LastSequence())
	}
}
