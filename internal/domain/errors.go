package domain

import (
	"fmt"
	"strings"

	"github.com/asfuyao/outcome"
)

// Shared validation messages used by entity Validate methods and request DTOs.
const (
	MsgRequired     = "is required"
	MsgMustNotEmpty = "must not be empty"
)

// ValidationError provides programmatic access to field-level validation
// failures. Use errors.Is(err, outcome.ErrInvalidArgument) for simple checks,
// or errors.As(err, &verr) to access verr.Fields for per-field details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", outcome.ErrInvalidArgument.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return outcome.ErrInvalidArgument
}

// Fault converts the validation error into an invalid-argument fault so it
// can travel through Outcome-based signatures with its field summary intact.
func (e *ValidationError) Fault() *outcome.Fault {
	return outcome.NewFault(outcome.KindInvalidArgument, e.Error())
}
