package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates a missing or invalid session, or a rejected credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConfiguration indicates that a required deployment setting is absent.
// It is a server-side problem and is never correctable by the caller.
var ErrConfiguration = errors.New("server configuration error")

// ErrStorage indicates that the object storage write failed.
var ErrStorage = errors.New("storage error")

// ValidationError carries the client-facing message of a rejected input.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError returns a *ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// ConfigurationError names the missing setting and carries the client-facing message.
// It matches ErrConfiguration with errors.Is.
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// StorageError wraps a failed object storage write. Its message is the underlying
// storage message. It matches ErrStorage and the wrapped error with errors.Is.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
