package errors

import "fmt"

// ErrNotFound indicates a requested resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates a caller supplied an invalid value
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ErrEmptySelection indicates a quote was requested with no items selected.
// Callers should suppress link generation rather than emit a degenerate link.
type ErrEmptySelection struct{}

func (e *ErrEmptySelection) Error() string {
	return "no items selected"
}
