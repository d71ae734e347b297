package errs

import (
	"errors"
	"fmt"
)

// ErrPersistence is the sentinel matched by every PersistenceError.
var ErrPersistence = errors.New("persistence failure")

// PersistenceError reports a storage backend failure for a named operation.
type PersistenceError struct {
	Operation string
	Cause     error
}

// NewPersistenceError wraps a backend failure for the given operation.
func NewPersistenceError(operation string, cause error) *PersistenceError {
	return &PersistenceError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)",
			ErrPersistence, sanitize(e.Operation), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrPersistence, sanitize(e.Operation))
}

func (e *PersistenceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Cause}
}
