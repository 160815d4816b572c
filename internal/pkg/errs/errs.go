package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Wrapped by the corresponding struct types so callers
// can classify failures with errors.Is.
var (
	ErrValueIsRequired        = errors.New("value is required")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrObjectNotFound         = errors.New("object not found")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAuthorizationDenied    = errors.New("authorization denied")
	ErrPersistence            = errors.New("persistence failure")
	ErrBootstrapRejected      = errors.New("bootstrap rejected")
)

// sanitize collapses newlines so multi-line values cannot break log lines.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a lookup by identifier yielded no object.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AuthenticationRequiredError indicates the caller has no active session.
// The HTTP adapter answers it with a redirect to the authentication entry
// point; no message is shown to the user.
type AuthenticationRequiredError struct {
	Cause error
}

func NewAuthenticationRequiredError() *AuthenticationRequiredError {
	return &AuthenticationRequiredError{}
}

func NewAuthenticationRequiredErrorWithCause(cause error) *AuthenticationRequiredError {
	return &AuthenticationRequiredError{Cause: cause}
}

func (e *AuthenticationRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", ErrAuthenticationRequired, e.Cause))
	}
	return ErrAuthenticationRequired.Error()
}

func (e *AuthenticationRequiredError) Unwrap() error {
	return ErrAuthenticationRequired
}

// AuthorizationDeniedError indicates the caller's role may not perform the
// attempted action. It must never degrade into a silent success.
type AuthorizationDeniedError struct {
	Role   string
	Action string
	Cause  error
}

func NewAuthorizationDeniedError(role, action string) *AuthorizationDeniedError {
	return &AuthorizationDeniedError{Role: role, Action: action}
}

func NewAuthorizationDeniedErrorWithCause(role, action string, cause error) *AuthorizationDeniedError {
	return &AuthorizationDeniedError{Role: role, Action: action, Cause: cause}
}

func (e *AuthorizationDeniedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: role %s may not %s (cause: %s)",
			ErrAuthorizationDenied, e.Role, e.Action, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: role %s may not %s", ErrAuthorizationDenied, e.Role, e.Action))
}

func (e *AuthorizationDeniedError) Unwrap() error {
	return ErrAuthorizationDenied
}

// PersistenceError indicates the store rejected a read or write. The
// operation is treated as not applied; callers must not assume success.
type PersistenceError struct {
	Op    string
	Cause error
}

func NewPersistenceError(op string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Cause: cause}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPersistence, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPersistence, e.Op))
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistence
}

// BootstrapRejectedError indicates the administrator bootstrap operation
// was refused: bad shared secret, or the server is not configured for it.
// No partial account is created when this error is returned.
type BootstrapRejectedError struct {
	Reason string
	Cause  error
}

func NewBootstrapRejectedError(reason string) *BootstrapRejectedError {
	return &BootstrapRejectedError{Reason: reason}
}

func NewBootstrapRejectedErrorWithCause(reason string, cause error) *BootstrapRejectedError {
	return &BootstrapRejectedError{Reason: reason, Cause: cause}
}

func (e *BootstrapRejectedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrBootstrapRejected, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrBootstrapRejected, e.Reason))
}

func (e *BootstrapRejectedError) Unwrap() error {
	return ErrBootstrapRejected
}
