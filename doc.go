// Package machina is a small embeddable engine for driving host objects
// through declaratively defined state machines in response to discrete
// events.
//
// Host code attaches a current state to arbitrary objects by embedding
// StateRef, compiles a compact Definition into an immutable
// StateMachine, and batch-delivers events to many objects through a
// shared EventQueue. Edges carry an optional trigger kind, guard
// predicate, and side-effecting Effect; chains of initial and choice
// pseudo-states are resolved automatically within the dispatch that
// entered them, so decision nodes branch on guards without the caller
// issuing extra events.
//
// The engine is fully single-threaded and synchronous. Effects may emit
// further events through an Emitter; those wait their turn in FIFO
// order rather than re-entering dispatch, so delivery is breadth-first
// over events.
package machina
