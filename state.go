package machina

// StateKind classifies how a state participates in dispatch
type StateKind int

const (
	// KindRegular is an ordinary named state that waits for events
	KindRegular StateKind = iota
	// KindInitial is the synthesized entry pseudo-state holding the
	// single unconditional edge declared by the definition
	KindInitial
	// KindChoice is a transient routing state whose edges are
	// re-evaluated against the same event that entered it
	KindChoice
	// KindFinal is the synthesized absorbing state with no edges
	KindFinal
)

// String returns the lowercase name of the kind
func (k StateKind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindInitial:
		return "initial"
	case KindChoice:
		return "choice"
	case KindFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Reserved state names synthesized by the definition compiler.
const (
	// InitialStateName is the name of the synthesized entry state
	InitialStateName = "initial"
	// FinalStateName is the name of the synthesized absorbing state;
	// transitions may target it directly
	FinalStateName = "final"
)

// State is a named node in a state machine holding an ordered list of
// outgoing edges. Edges are evaluated in declaration order; the first
// edge whose trigger matches and whose guard passes is taken.
type State struct {
	Name        string
	Kind        StateKind
	Transitions []Edge
}

// IsPseudo reports whether the state is a transient routing node whose
// edges are evaluated automatically during a cascade
func (s *State) IsPseudo() bool {
	return s.Kind == KindInitial || s.Kind == KindChoice
}

// IsFinal reports whether the state is absorbing
func (s *State) IsFinal() bool {
	return s.Kind == KindFinal
}
