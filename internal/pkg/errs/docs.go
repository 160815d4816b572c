// Package errs provides standardized error types for the order-tracking
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrAuthorizationDenied)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Beyond the generic validation errors (ValueIsRequiredError,
// ValueIsInvalidError, ObjectNotFoundError) the package carries the
// application's failure taxonomy: AuthenticationRequiredError (no
// session), AuthorizationDeniedError (role not allowed to perform an
// action), PersistenceError (the store rejected a read or write), and
// BootstrapRejectedError (administrator bootstrap refused). Operation
// boundaries convert lower-level failures into these types; the HTTP
// adapter maps them onto status codes.
package errs
