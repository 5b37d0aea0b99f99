package machina

// Stateful is the capability contract for objects driven by a state
// machine: a gettable/settable current-state name plus a back-reference
// to the owning machine. The engine reads and writes only this surface
// and never inspects the rest of the object. Host types typically embed
// StateRef rather than implementing the interface by hand.
type Stateful interface {
	StateName() string
	SetStateName(name string)
	Machine() *StateMachine
	SetMachine(m *StateMachine)
}

// StateRef is an embeddable implementation of Stateful. The machine
// reference is a non-owning association; the engine never controls the
// lifetime of the host object.
type StateRef struct {
	stateName string
	machine   *StateMachine
}

// StateName returns the recorded current-state name
func (r *StateRef) StateName() string {
	return r.stateName
}

// SetStateName records the current-state name
func (r *StateRef) SetStateName(name string) {
	r.stateName = name
}

// Machine returns the owning state machine
func (r *StateRef) Machine() *StateMachine {
	return r.machine
}

// SetMachine records the owning state machine
func (r *StateRef) SetMachine(m *StateMachine) {
	r.machine = m
}

// StateMachine is a named lookup table of states. It is immutable after
// construction and shared read-only by every object it governs; hosts
// that dispatch to one machine from multiple goroutines must serialize
// access to the objects themselves.
type StateMachine struct {
	name       string
	states     map[string]*State
	maxCascade int
	observers  *ObserverManager
}

// Option configures a state machine at construction time
type Option func(*StateMachine)

// WithMaxCascadeDepth bounds the number of automatic pseudo-state hops a
// single dispatch may take. When the bound is exceeded ProcessEvent
// returns a TransitionError instead of looping. Zero (the default)
// leaves cascades unbounded; a cycle of choice states with
// always-passing guards then loops forever.
func WithMaxCascadeDepth(depth int) Option {
	return func(m *StateMachine) {
		m.maxCascade = depth
	}
}

// Name returns the machine name
func (m *StateMachine) Name() string {
	return m.name
}

// State returns the named state and whether it exists
func (m *StateMachine) State(name string) (*State, bool) {
	state, ok := m.states[name]
	return state, ok
}

// States returns the machine's state table keyed by name. The returned
// map is a copy; the states it points to are shared and must not be
// mutated.
func (m *StateMachine) States() map[string]*State {
	states := make(map[string]*State, len(m.states))
	for name, state := range m.states {
		states[name] = state
	}
	return states
}

// AddObserver registers an observer for transitions on this machine
func (m *StateMachine) AddObserver(observer Observer) {
	m.observers.AddObserver(observer)
}

// RemoveObserver unregisters an observer
func (m *StateMachine) RemoveObserver(observer Observer) {
	m.observers.RemoveObserver(observer)
}

// InitializeState binds the object to this machine and lands it on its
// first resting state. It sets the recorded state to the synthesized
// initial state and dispatches a wildcard event, which forces the
// initial state's unconditional edge and any subsequent choice chain to
// fire before the object ever sees an external event.
func (m *StateMachine) InitializeState(obj Stateful) error {
	obj.SetMachine(m)
	obj.SetStateName(InitialStateName)
	return m.ProcessEvent(obj, NewEvent("", nil))
}

// ProcessEvent drives the object's current state through zero or more
// edges in response to one event.
//
// The current state's edges are scanned in declaration order and the
// first edge whose trigger matches the event and whose guard passes is
// taken; no other edge is considered. When the edge lands on a pseudo
// state (initial or choice) the new state's edges are re-evaluated
// against the same event, cascading until a regular or final state is
// reached or no edge qualifies. Regular and final states take at most
// one externally triggered transition per event; the final state has no
// edges, so dispatch on a finished object is a no-op.
//
// An unknown current state or edge target indicates a misconfigured
// machine and is returned as a structured error. Errors from effects
// propagate unmodified; the cascade already performed is not rolled
// back, and the object rests on the last state it reached.
func (m *StateMachine) ProcessEvent(obj Stateful, event Event) error {
	current := obj.StateName()
	state, ok := m.states[current]
	if !ok {
		return NewStateNotFoundError(current)
	}

	depth := 0
	for {
		taken := false
		for _, edge := range state.Transitions {
			if !edge.Matches(event) || !edge.PassesGuard(obj, event.Payload) {
				continue
			}

			target, err := edge.Execute(obj, event.Payload, event)
			if err != nil {
				obj.SetStateName(current)
				return err
			}
			next, ok := m.states[target]
			if !ok {
				obj.SetStateName(current)
				return NewInvalidTargetError(current, target, event.Kind)
			}

			m.observers.NotifyTransition(obj, current, target, event)
			current = target
			state = next
			taken = true
			break
		}

		if !taken {
			if depth == 0 {
				m.observers.NotifyEventUnhandled(obj, event)
			}
			break
		}
		if !state.IsPseudo() {
			break
		}

		depth++
		if m.maxCascade > 0 && depth > m.maxCascade {
			obj.SetStateName(current)
			return NewCascadeOverflowError(current, event.Kind, m.maxCascade)
		}
	}

	obj.SetStateName(current)
	return nil
}

// Dispatch delivers an event to an object through the machine it is
// bound to, so callers holding only the object can drive it. The object
// must have been initialized via InitializeState first.
func Dispatch(obj Stateful, event Event) error {
	machine := obj.Machine()
	if machine == nil {
		return NewConfigurationError("Dispatch", "object is not bound to a machine")
	}
	return machine.ProcessEvent(obj, event)
}
