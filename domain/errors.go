package domain

import "fmt"

// ValidationError marks malformed or missing required input. Handlers map it
// to a 400 with the offending field so forms can highlight it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StateConflictError marks an inventory transition whose precondition no
// longer holds, either because another staff action won the race or because
// the unit is already in a terminal status. Handlers map it to a 409 so the
// console refreshes instead of re-showing a form.
type StateConflictError struct {
	UnitID    string
	Current   string
	Attempted string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("unit %s is %s, cannot transition to %s", e.UnitID, e.Current, e.Attempted)
}

func NewStateConflictError(unitID, current, attempted string) *StateConflictError {
	return &StateConflictError{UnitID: unitID, Current: current, Attempted: attempted}
}
