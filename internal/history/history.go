package history

import (
	"context"
	"time"
)

// EventType defines the kind of lifecycle event.
type EventType string

const (
	EventStart EventType = "start"
	EventStop  EventType = "stop"
)

// Source records who initiated the event.
type Source string

const (
	SourceManual    Source = "manual"    // control-surface request
	SourceReconcile Source = "reconcile" // reconciliation loop
)

// Event represents one lifecycle event to be exported to external systems.
type Event struct {
	Type       EventType `json:"type"`
	Source     Source    `json:"source"`
	OccurredAt time.Time `json:"occurred_at"`
	Name       string    `json:"name"`
	PID        int       `json:"pid"`
}

// Sink is a destination for history events. Implementations must be safe for
// concurrent use. Sink failures never affect supervision; callers log and
// move on.
type Sink interface {
	Send(ctx context.Context, e Event) error
	Close() error
}
