package errs

import (
	"errors"
	"strings"
)

// ErrValidation is the sentinel matched by every ValidationError. The HTTP
// boundary uses it to answer 400 instead of 500.
var ErrValidation = errors.New("validation failed")

// ValidationError is returned when input data cannot form a valid domain
// object. Reason is the client-facing message; Violations carry the
// individual rule failures.
type ValidationError struct {
	Reason     string
	Violations []error
}

// NewValidationError builds a ValidationError, dropping nil violations.
//
// Example:
//
//	err := errs.NewValidationError("Invalid order data provided",
//	    errs.NewValueIsRequiredError("customerName"),
//	)
//	errors.Is(err, errs.ErrValidation)      // true
//	errors.Is(err, errs.ErrValueIsRequired) // true
func NewValidationError(reason string, violations ...error) *ValidationError {
	kept := make([]error, 0, len(violations))
	for _, v := range violations {
		if v != nil {
			kept = append(kept, v)
		}
	}

	return &ValidationError{
		Reason:     reason,
		Violations: kept,
	}
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return sanitize(e.Reason)
	}

	details := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		details[i] = sanitize(v.Error())
	}
	return sanitize(e.Reason) + ": " + strings.Join(details, "; ")
}

func (e *ValidationError) Unwrap() []error {
	return append([]error{ErrValidation}, e.Violations...)
}
