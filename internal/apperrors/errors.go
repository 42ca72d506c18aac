// Package apperrors defines the error taxonomy shared by services and handlers.
// Services return errors wrapping one of the sentinels below; handlers translate
// them to HTTP status codes at the request boundary.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned on login failure. Unknown username and
	// wrong password produce the same error so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthenticated is returned when no token is present on the request.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrUnauthorized is returned when a token is present but invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired token")
	// ErrForbidden is returned when the caller's role does not permit the operation.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrNotFound is returned when the referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername is returned when registration hits the username
	// uniqueness constraint.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrStorage wraps unexpected database errors. Its details are logged but
	// never leaked to the client.
	ErrStorage = errors.New("storage failure")
)

// Invalid wraps ErrInvalidInput with a field-level message.
func Invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// NotFound wraps ErrNotFound naming the missing entity.
func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// Storage wraps an underlying database error into ErrStorage.
func Storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
