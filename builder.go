package machina

// Definition is the compact declarative description of a state machine.
// Initial plays the role of the table's first entry: its effect(s) and
// target are applied immediately when an object is initialized, not
// gated on an event. The remaining entries declare named states in
// order.
type Definition struct {
	Name    string
	Initial InitialDef
	States  []StateDef
}

// InitialDef declares the machine's entry transition. Effect and
// Effects mirror the single-or-list effect field of transitions; when
// Effects is non-nil it takes precedence and runs each effect in order.
type InitialDef struct {
	Effect  Effect
	Effects []Effect
	To      string
}

// StateDef declares one named state and its outgoing transitions.
// Kind defaults to KindRegular; KindChoice marks the state as a
// transient routing node. Other kinds are rejected, the initial and
// final states are always synthesized by Compile.
type StateDef struct {
	Name        string
	Kind        StateKind
	Transitions []TransitionDef
}

// TransitionDef declares one edge. Every field is optional:
//   - an empty Trigger matches every event
//   - Guard/Guards absent means the edge always passes; a non-nil
//     Guards list is combined with AllOf, so all must pass and an empty
//     list never passes
//   - Effect/Effects absent performs no side effect; a non-nil Effects
//     list runs each in order
//   - an empty To self-loops to the declaring state
//
// When both the single and list form of a field are set, the list wins.
type TransitionDef struct {
	Trigger string
	Guard   Guard
	Guards  []Guard
	Effect  Effect
	Effects []Effect
	To      string
}

func (t TransitionDef) guard() Guard {
	if t.Guards != nil {
		return AllOf(t.Guards...)
	}
	return t.Guard
}

func (t TransitionDef) effect() Effect {
	return combineEffects(t.Effect, t.Effects)
}

func combineEffects(single Effect, list []Effect) Effect {
	if list != nil {
		return EachOf(list...)
	}
	return single
}

// Compile turns a definition into an immutable state machine. The
// result always contains the synthesized "initial" state, holding the
// definition's unconditional entry edge, and the synthesized absorbing
// "final" state with no edges.
//
// Compile performs no well-formedness validation beyond rejecting an
// empty definition and unsupported state kinds: unknown edge targets
// are detected at the point a dispatch takes the edge.
func Compile(def Definition, opts ...Option) (*StateMachine, error) {
	if def.Initial.To == "" && len(def.States) == 0 {
		return nil, NewConfigurationError("Definition", "empty machine definition")
	}
	if def.Initial.To == "" {
		return nil, NewConfigurationError("Definition", "initial entry has no target state")
	}

	machine := &StateMachine{
		name:      def.Name,
		states:    make(map[string]*State, len(def.States)+2),
		observers: NewObserverManager(),
	}

	for _, sd := range def.States {
		if sd.Kind != KindRegular && sd.Kind != KindChoice {
			return nil, NewConfigurationError("Definition",
				"state '"+sd.Name+"' declares unsupported kind '"+sd.Kind.String()+"'")
		}

		edges := make([]Edge, 0, len(sd.Transitions))
		for _, td := range sd.Transitions {
			target := td.To
			if target == "" {
				target = sd.Name
			}
			edges = append(edges, Edge{
				Trigger: td.Trigger,
				Guard:   td.guard(),
				Effect:  td.effect(),
				To:      target,
			})
		}

		machine.states[sd.Name] = &State{
			Name:        sd.Name,
			Kind:        sd.Kind,
			Transitions: edges,
		}
	}

	// Synthesized states win over colliding declarations; the reserved
	// names are part of the schema contract.
	machine.states[InitialStateName] = &State{
		Name: InitialStateName,
		Kind: KindInitial,
		Transitions: []Edge{{
			Effect: combineEffects(def.Initial.Effect, def.Initial.Effects),
			To:     def.Initial.To,
		}},
	}
	machine.states[FinalStateName] = &State{
		Name: FinalStateName,
		Kind: KindFinal,
	}

	for _, opt := range opts {
		opt(machine)
	}

	return machine, nil
}
