package machina

import "fmt"

// ErrorCode represents specific failure conditions in the engine
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// An object's recorded state was not found in the machine
	ErrCodeStateNotFound
	// A taken edge's target does not name an existing state
	ErrCodeInvalidTarget
	// A pseudo-state cascade exceeded the configured depth bound
	ErrCodeCascadeOverflow
	// Definition or configuration input is invalid
	ErrCodeInvalidConfiguration
)

// StateError represents state lookup failures during dispatch
type StateError struct {
	Code    ErrorCode
	StateID string
	Message string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state error [%s]: %s", e.StateID, e.Message)
}

// NewStateNotFoundError reports an object whose recorded state does not
// exist in the machine's state table
func NewStateNotFoundError(stateID string) *StateError {
	return &StateError{
		Code:    ErrCodeStateNotFound,
		StateID: stateID,
		Message: fmt.Sprintf("state '%s' not found", stateID),
	}
}

// TransitionError represents edge-level failures during dispatch
type TransitionError struct {
	Code   ErrorCode
	From   string
	To     string
	Event  string
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition error [%s->%s on %q]: %s", e.From, e.To, e.Event, e.Reason)
}

// NewInvalidTargetError reports a taken edge whose target does not name
// an existing state
func NewInvalidTargetError(from, to, event string) *TransitionError {
	return &TransitionError{
		Code:   ErrCodeInvalidTarget,
		From:   from,
		To:     to,
		Event:  event,
		Reason: fmt.Sprintf("target state '%s' not found", to),
	}
}

// NewCascadeOverflowError reports a pseudo-state cascade that exceeded
// the machine's configured depth bound
func NewCascadeOverflowError(state, event string, depth int) *TransitionError {
	return &TransitionError{
		Code:   ErrCodeCascadeOverflow,
		From:   state,
		To:     state,
		Event:  event,
		Reason: fmt.Sprintf("pseudo-state cascade exceeded %d transitions", depth),
	}
}

// ConfigurationError represents invalid definition or loader input
type ConfigurationError struct {
	Component string
	Issue     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Issue)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(component, issue string) *ConfigurationError {
	return &ConfigurationError{
		Component: component,
		Issue:     issue,
	}
}

// IsStateError checks if an error is a StateError
func IsStateError(err error) bool {
	_, ok := err.(*StateError)
	return ok
}

// IsTransitionError checks if an error is a TransitionError
func IsTransitionError(err error) bool {
	_, ok := err.(*TransitionError)
	return ok
}

// IsConfigurationError checks if an error is a ConfigurationError
func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	switch e := err.(type) {
	case *StateError:
		return e.Code
	case *TransitionError:
		return e.Code
	case *ConfigurationError:
		return ErrCodeInvalidConfiguration
	default:
		return ErrCodeNone
	}
}
