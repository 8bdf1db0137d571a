// Package apierror carries the HTTP facing error model shared by all API
// families. Services return *Error values; the HTTP layer renders them.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an API error with a status class and a stable machine-readable code.
// Err holds the underlying cause and is never rendered to clients.
type Error struct {
	Status      int
	Code        string
	Message     string
	Description string
	Err         error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Code, e.Message, e.Description, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Code, e.Message, e.Description)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error without an underlying cause.
func New(status int, code, message, description string) *Error {
	return &Error{Status: status, Code: code, Message: message, Description: description}
}

// Wrap builds an Error keeping cause for logs and errors.Is checks.
func Wrap(cause error, status int, code, message, description string) *Error {
	return &Error{Status: status, Code: code, Message: message, Description: description, Err: cause}
}

// From extracts an *Error from err's chain.
func From(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsServerError reports whether the error belongs to the 5xx class, which
// callers log with the cause and render without internal details.
func (e *Error) IsServerError() bool {
	return e.Status >= http.StatusInternalServerError
}
