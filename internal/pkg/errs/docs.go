// Package errs provides standardized error types for the kabalen backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the failure modes the core recognizes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or violates a rule
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ConflictError: a state-transition guard rejected the operation
//   - AuthenticationError: a credential check failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Callers classify errors with errors.Is against the sentinels; the HTTP
// adapter maps each sentinel to a response status.
package errs
