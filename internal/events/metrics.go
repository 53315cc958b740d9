package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks bus statistics using atomic operations for thread-safety
type Metrics struct {
	EventsPublished atomic.Int64
	EventsDelivered atomic.Int64
	EventsDropped   atomic.Int64
	Subscribers     atomic.Int32
	StartTime       time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	EventsPublished int64     `json:"events_published"`
	EventsDelivered int64     `json:"events_delivered"`
	EventsDropped   int64     `json:"events_dropped"` // Deliveries skipped because a buffer was full
	Subscribers     int32     `json:"subscribers"`
	StartTime       time.Time `json:"start_time"`
	Uptime          string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsPublished: m.EventsPublished.Load(),
		EventsDelivered: m.EventsDelivered.Load(),
		EventsDropped:   m.EventsDropped.Load(),
		Subscribers:     m.Subscribers.Load(),
		StartTime:       m.StartTime,
		Uptime:          time.Since(m.StartTime).String(),
	}
}
