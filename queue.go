package machina

// EventQueue is a FIFO buffer of events shared by a set of stateful
// objects. Each queue is an independent instance owned by its creator;
// hosts that drive unrelated machines should use separate queues.
//
// The queue is not safe for concurrent use. Hosts that pump from
// multiple goroutines must protect it or shard one queue per worker.
type EventQueue struct {
	events    []Event
	observers *ObserverManager
}

// NewEventQueue creates a new empty event queue
func NewEventQueue() *EventQueue {
	return &EventQueue{
		events:    make([]Event, 0),
		observers: NewObserverManager(),
	}
}

// AddObserver registers an observer for queue activity
func (q *EventQueue) AddObserver(observer Observer) {
	q.observers.AddObserver(observer)
}

// RemoveObserver unregisters an observer
func (q *EventQueue) RemoveObserver(observer Observer) {
	q.observers.RemoveObserver(observer)
}

// Add appends an event to the tail of the queue
func (q *EventQueue) Add(event Event) {
	q.events = append(q.events, event)
	q.observers.NotifyEventEmitted(event)
}

// Pop removes and returns the head event. The second return value is
// false when the queue is empty.
func (q *EventQueue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	head := q.events[0]
	q.events = q.events[1:]
	return head, true
}

// IsEmpty reports whether the queue holds no events
func (q *EventQueue) IsEmpty() bool {
	return len(q.events) == 0
}

// Len returns the number of queued events
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Pump drains the queue, delivering every event to every object.
//
// Delivery is breadth-first over events: the head event is dispatched to
// each object in list order before the next event is popped. Events
// enqueued by effects during delivery go to the tail and are therefore
// seen by all objects only after the current event has finished its
// round. Pump returns when the queue is empty, including events
// generated partway through.
//
// The first dispatch error stops the pump and is returned; remaining
// events stay queued.
func (q *EventQueue) Pump(objects []Stateful) error {
	for {
		event, ok := q.Pop()
		if !ok {
			return nil
		}
		for _, obj := range objects {
			if err := Dispatch(obj, event); err != nil {
				q.observers.NotifyError(obj, err)
				return err
			}
			q.observers.NotifyEventDelivered(obj, event)
		}
	}
}
