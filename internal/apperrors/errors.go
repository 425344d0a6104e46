package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Ownership failures use it too, so callers can not probe for the existence
// of another user's data.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an internal-consistency fault; it is a bug, not a user error.
var ErrInternal = errors.New("internal error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTransactionalRecord is returned when a record owned by a transfer is
// edited or deleted through the generic record paths. Only the ledger
// posting engine may mutate such records.
var ErrTransactionalRecord = errors.New("Can not change transactional record.")

// ReferenceNotFoundError reports a foreign key reference (account, currency,
// category, user) whose target does not exist. Field names the offending
// request field.
type ReferenceNotFoundError struct {
	Field  string
	Entity string
}

func (e ReferenceNotFoundError) Error() string {
	return e.Field + ": " + e.Entity + " with this id does not exist"
}

// Unwrap lets errors.Is treat a missing reference as a validation failure.
func (e ReferenceNotFoundError) Unwrap() error {
	return ErrValidation
}

// NewReferenceNotFound builds a ReferenceNotFoundError for a request field.
func NewReferenceNotFound(field, entity string) error {
	return ReferenceNotFoundError{Field: field, Entity: entity}
}

// AppError wraps a lower-level error with an HTTP-ish status code and a
// message describing the failed operation. The repositories use it for
// database failures that are not a plain not-found.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
