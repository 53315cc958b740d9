package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBufferSize is the per-subscriber channel capacity
const DefaultBufferSize = 100

// Bus is an in-process publish/subscribe hub for board events.
// Publish never blocks: a subscriber whose buffer is full misses the event.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]*subscription
	nextID int
	closed bool // Prevent double-close panics
	done   chan struct{}

	lastSequence atomic.Int64
	metrics      *Metrics

	bufferSize int
	now        func() time.Time
	logger     *slog.Logger
}

type subscription struct {
	ch    chan Event
	types map[EventType]bool // empty means every type
}

// BusOption configures a Bus
type BusOption func(*Bus)

// WithBufferSize sets the per-subscriber channel capacity
func WithBufferSize(n int) BusOption {
	return func(b *Bus) {
		if n > 0 {
			b.bufferSize = n
		}
	}
}

// WithClock sets the clock used to stamp events
func WithClock(now func() time.Time) BusOption {
	return func(b *Bus) {
		b.now = now
	}
}

// WithLogger sets the logger used for dropped events
func WithLogger(logger *slog.Logger) BusOption {
	return func(b *Bus) {
		b.logger = logger
	}
}

// NewBus creates an open bus with no subscribers
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		subs:       make(map[int]*subscription),
		done:       make(chan struct{}),
		bufferSize: DefaultBufferSize,
		now:        time.Now,
		logger:     slog.Default(),
		metrics:    NewMetrics(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish stamps the event with a sequence number and timestamp, then
// delivers it to every subscriber interested in its type.
func (b *Bus) Publish(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	event.SequenceID = b.lastSequence.Add(1)
	b.metrics.EventsPublished.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	for id, sub := range b.subs {
		if len(sub.types) > 0 && !sub.types[event.Type] {
			continue
		}
		select {
		case sub.ch <- event:
			b.metrics.EventsDelivered.Add(1)
		default:
			b.metrics.EventsDropped.Add(1)
			b.logger.Warn("event dropped, subscriber buffer full",
				"subscriber", id,
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}
	return nil
}

// Subscribe registers a subscriber. The returned channel is closed when ctx
// is done or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context, types ...EventType) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	sub := &subscription{
		ch:    make(chan Event, b.bufferSize),
		types: make(map[EventType]bool, len(types)),
	}
	for _, t := range types {
		sub.types[t] = true
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.metrics.Subscribers.Add(1)

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(id)
		case <-b.done:
		}
	}()

	return sub.ch, nil
}

func (b *Bus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		b.metrics.Subscribers.Add(-1)
		close(sub.ch)
	}
}

// LastSequence returns the sequence number of the most recent event
func (b *Bus) LastSequence() int64 {
	return b.lastSequence.Load()
}

// Metrics returns a snapshot of the bus counters
func (b *Bus) Metrics() MetricsSnapshot {
	return b.metrics.GetSnapshot()
}

// Close closes every subscription. Further publishes return ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)

	b.metrics.Subscribers.Store(0)
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
	return nil
}
