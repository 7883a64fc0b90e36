package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no history entry matches the requested id.
var ErrNotFound = errors.New("analysis entry not found")

// ValidationError reports user input that blocks an analysis from running.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
