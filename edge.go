package machina

// Guard evaluates whether a matching edge may fire. It receives the
// object being driven and the payload of the event under consideration.
type Guard func(obj Stateful, payload any) bool

// Effect performs a side effect when an edge fires. A non-nil error
// aborts the dispatch in progress and propagates unmodified to the
// caller of ProcessEvent or Pump.
type Effect func(obj Stateful, payload any, event Event) error

// Edge is one directed transition out of a state: an optional trigger
// kind, an optional guard, an optional effect, and a target state name.
type Edge struct {
	// Trigger is the event kind this edge requires. Empty matches
	// every event, including the engine's internal wildcard events.
	Trigger string
	// Guard gates the edge. Nil always passes.
	Guard Guard
	// Effect runs when the edge is taken. Nil performs no side effect
	// besides the transition itself.
	Effect Effect
	// To names the target state within the owning machine.
	To string
}

// Matches reports whether the edge's trigger accepts the event
func (e Edge) Matches(event Event) bool {
	return e.Trigger == "" || e.Trigger == event.Kind
}

// PassesGuard reports whether the edge's guard admits the object and
// payload. A nil guard always passes.
func (e Edge) PassesGuard(obj Stateful, payload any) bool {
	if e.Guard == nil {
		return true
	}
	return e.Guard(obj, payload)
}

// Execute runs the edge's effect, if any, and returns the target state
// name. The caller is responsible for validating that the target exists
// in the owning machine.
func (e Edge) Execute(obj Stateful, payload any, event Event) (string, error) {
	if e.Effect != nil {
		if err := e.Effect(obj, payload, event); err != nil {
			return "", err
		}
	}
	return e.To, nil
}

// AllOf combines guards with logical AND: the combined guard passes only
// when every guard passes. With no guards it never passes; declaring an
// explicitly empty guard list gates the edge shut.
func AllOf(guards ...Guard) Guard {
	return func(obj Stateful, payload any) bool {
		if len(guards) == 0 {
			return false
		}
		for _, guard := range guards {
			if !guard(obj, payload) {
				return false
			}
		}
		return true
	}
}

// EachOf combines effects into one that runs them all in declaration
// order. The first error stops the sequence and is returned.
func EachOf(effects ...Effect) Effect {
	return func(obj Stateful, payload any, event Event) error {
		for _, effect := range effects {
			if err := effect(obj, payload, event); err != nil {
				return err
			}
		}
		return nil
	}
}
