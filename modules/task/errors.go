package task

import (
	"errors"
	"fmt"
)

// ErrTaskNotFound is returned when no task matches the requested identifier.
var ErrTaskNotFound = errors.New("task not found")

// validationPrefix lets adapters recognize validation failures after the
// error has crossed the service container as a plain string.
const validationPrefix = "validation: "

// ValidationError reports a request field that failed validation.
// It is always detected before any store interaction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s%s: %s", validationPrefix, e.Field, e.Reason)
}

// StorageError wraps a storage engine failure so callers can tell it apart
// from not-found and validation outcomes.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
