package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates a failed login. The message is
// deliberately generic so callers cannot probe which emails exist.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrNotFound indicates a requested record does not exist or is not
// visible to the caller.
type ErrNotFound struct {
	Kind string
	ID   uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrFetchFailed indicates a job description URL could not be fetched
// or yielded no usable text.
type ErrFetchFailed struct {
	URL string
	Err error
}

func (e *ErrFetchFailed) Error() string {
	return fmt.Sprintf("failed to fetch job description from %s: %v", e.URL, e.Err)
}

func (e *ErrFetchFailed) Unwrap() error {
	return e.Err
}

// HTTPStatus maps an error to its HTTP status code.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
