package machina

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a discrete occurrence delivered to state machines.
// Events are immutable once created. An empty Kind is the wildcard kind;
// the engine uses it internally to drive pseudo-state cascades, and an
// Edge with an empty Trigger matches any event regardless of kind.
type Event struct {
	ID        string
	Kind      string
	Payload   any
	Timestamp time.Time
}

// NewEvent creates a new event with the given kind and payload
func NewEvent(kind string, payload any) Event {
	return Event{
		ID:        uuid.New().String(),
		Kind:      kind,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// IsWildcard reports whether the event carries no kind
func (e Event) IsWildcard() bool {
	return e.Kind == ""
}

// Emitter produces events of a fixed kind into an event queue
type Emitter struct {
	kind  string
	queue *EventQueue
}

// NewEmitter creates an emitter that enqueues events of the given kind
func NewEmitter(kind string, queue *EventQueue) *Emitter {
	return &Emitter{
		kind:  kind,
		queue: queue,
	}
}

// Kind returns the event kind this emitter produces
func (e *Emitter) Kind() string {
	return e.kind
}

// Emit builds an event from the emitter's kind and the given payload and
// appends it to the queue. Events emitted while the queue is pumping are
// delivered after every event already queued.
func (e *Emitter) Emit(payload any) {
	e.queue.Add(NewEvent(e.kind, payload))
}
