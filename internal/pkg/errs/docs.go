// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes:
//   - ValueIsRequiredError: For when a required value is missing or blank
//   - ValueIsInvalidError: For when a value is present but breaks a business rule
//   - ValidationError: Groups rule violations under a client-facing reason
//   - PersistenceError: For when a storage backend fails an operation
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the message on a single line
//   - Unwrap() method so errors.Is matches the sentinel
//
// Callers classify errors with errors.Is against the sentinels: ErrValidation
// maps to a client error at the HTTP boundary, everything else is a server error.
package errs
