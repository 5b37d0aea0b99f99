package machina

import (
	"testing"
)

// TestObject is a minimal stateful host object for testing
type TestObject struct {
	StateRef
	Name string
}

// NewTestObject creates a named test object
func NewTestObject(name string) *TestObject {
	return &TestObject{Name: name}
}

// CreateSimpleMachine builds the canonical idle/running machine used
// throughout the tests: idle --start--> running --stop--> idle
func CreateSimpleMachine(t *testing.T) *StateMachine {
	t.Helper()

	machine, err := Compile(Definition{
		Name:    "simple",
		Initial: InitialDef{To: "idle"},
		States: []StateDef{
			{Name: "idle", Transitions: []TransitionDef{
				{Trigger: "start", To: "running"},
			}},
			{Name: "running", Transitions: []TransitionDef{
				{Trigger: "stop", To: "idle"},
			}},
		},
	})
	if err != nil {
		t.Fatalf("Expected no error compiling simple machine, got: %v", err)
	}
	return machine
}

// AssertState fails the test when the object is not in the wanted state
func AssertState(t *testing.T, obj Stateful, want string) {
	t.Helper()
	if got := obj.StateName(); got != want {
		t.Errorf("Expected state %q, got %q", want, got)
	}
}

// TransitionRecord captures one OnTransition notification
type TransitionRecord struct {
	Object Stateful
	From   string
	To     string
	Event  Event
}

// DeliveryRecord captures one per-object event notification
type DeliveryRecord struct {
	Object Stateful
	Event  Event
}

// TestObserver is a mock observer that captures all notifications
type TestObserver struct {
	Transitions []TransitionRecord
	Emitted     []Event
	Delivered   []DeliveryRecord
	Unhandled   []DeliveryRecord
	Errors      []error
}

// NewTestObserver creates a new test observer
func NewTestObserver() *TestObserver {
	return &TestObserver{}
}

// OnTransition implements the required Observer method
func (o *TestObserver) OnTransition(obj Stateful, from string, to string, event Event) {
	o.Transitions = append(o.Transitions, TransitionRecord{Object: obj, From: from, To: to, Event: event})
}

// OnEventEmitted implements the optional ExtendedObserver method
func (o *TestObserver) OnEventEmitted(event Event) {
	o.Emitted = append(o.Emitted, event)
}

// OnEventDelivered implements the optional ExtendedObserver method
func (o *TestObserver) OnEventDelivered(obj Stateful, event Event) {
	o.Delivered = append(o.Delivered, DeliveryRecord{Object: obj, Event: event})
}

// OnEventUnhandled implements the optional ExtendedObserver method
func (o *TestObserver) OnEventUnhandled(obj Stateful, event Event) {
	o.Unhandled = append(o.Unhandled, DeliveryRecord{Object: obj, Event: event})
}

// OnError implements the optional ExtendedObserver method
func (o *TestObserver) OnError(obj Stateful, err error) {
	o.Errors = append(o.Errors, err)
}

// Reset clears all captured notifications
func (o *TestObserver) Reset() {
	o.Transitions = nil
	o.Emitted = nil
	o.Delivered = nil
	o.Unhandled = nil
	o.Errors = nil
}
