// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found or is soft-deleted
//   - UnauthorizedError: For when the caller does not own the resource
//   - ConflictError: For uniqueness violations such as a duplicate signup email
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Storage-layer failures are wrapped into this taxonomy at adapter
// boundaries: the original cause is retained for logging, while callers
// see a fixed, machine-classifiable kind.
package errs
