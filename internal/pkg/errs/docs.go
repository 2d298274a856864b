// Package errs provides standardized error types for the warehouse service.
// Domain, application and adapter code build their failures from these types
// so the HTTP layer can classify them with errors.Is / errors.As.
//
// The package includes:
//   - ValueIsRequiredError: a mandatory value (or operator selection) is missing
//   - ValueIsInvalidError: a value breaks a business rule
//   - ValueIsOutOfRangeError: a numeric value is outside of its bounds
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - ConflictError: the operation is forbidden in the aggregate's current state
//
// Each type has a sentinel (ErrValueIsRequired, ...) returned by Unwrap and
// constructors with and without a cause.
package errs
