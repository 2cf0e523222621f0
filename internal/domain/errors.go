package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers.
var (
	// ErrInvalidRequest indicates the caller supplied invalid input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDataSourceUnavailable indicates the flight data source could not answer.
	ErrDataSourceUnavailable = errors.New("data source unavailable")

	// ErrUserExists indicates a sign-up collided with an existing user id or email.
	ErrUserExists = errors.New("user already exists with this user_id or email")

	// ErrUserNotFound indicates no user matches the supplied uid.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidPassword indicates the password did not match.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUnauthorized indicates a missing, unknown or expired session token.
	ErrUnauthorized = errors.New("unauthorized")
)

// DataSourceError wraps a failure from a flight data source.
type DataSourceError struct {
	// Source is the name of the data source that failed
	Source string

	// Err is the underlying error
	Err error

	// Retryable reports whether repeating the call may succeed
	Retryable bool
}

// Error implements the error interface.
func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// Is makes every DataSourceError match ErrDataSourceUnavailable.
func (e *DataSourceError) Is(target error) bool {
	return target == ErrDataSourceUnavailable
}

// NewDataSourceError creates a non-retryable DataSourceError.
func NewDataSourceError(source string, err error) *DataSourceError {
	return &DataSourceError{Source: source, Err: err}
}

// NewRetryableDataSourceError creates a retryable DataSourceError.
func NewRetryableDataSourceError(source string, err error) *DataSourceError {
	return &DataSourceError{Source: source, Err: err, Retryable: true}
}

// IsRetryable reports whether err carries a retryable DataSourceError.
func IsRetryable(err error) bool {
	var dsErr *DataSourceError
	if errors.As(err, &dsErr) {
		return dsErr.Retryable
	}
	return false
}

// ValidationError describes a single invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets validation failures match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message and wraps it with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsDataSourceFailure reports whether err is a data source failure.
func IsDataSourceFailure(err error) bool {
	return errors.Is(err, ErrDataSourceUnavailable)
}
