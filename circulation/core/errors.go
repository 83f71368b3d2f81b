package core

import "errors"

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState matches every *StateError via errors.Is.
	ErrInvalidState = errors.New("invalid state transition")
)

// ValidationError reports a value that violates an entity invariant.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Entity + ": " + e.Field + " " + e.Reason
}

// Is makes errors.Is(err, ErrValidation) report true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StateError reports a mutation which the current state of an entity does not allow.
type StateError struct {
	Entity    string
	Operation string
	Reason    string
}

func (e *StateError) Error() string {
	return e.Entity + ": cannot " + e.Operation + ": " + e.Reason
}

// Is makes errors.Is(err, ErrInvalidState) report true.
func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}
