package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the single failure kind for remote API calls: network errors,
// timeouts, non-2xx responses, body-read failures and JSON decode failures
// all surface as *Error. A response that decoded successfully but whose
// action denotes a protocol error is NOT an Error; callers must check the
// action on the typed response instead.
type Error struct {
	// Message is a human-readable description of the failure.
	Message string

	// StatusCode and StatusText describe the HTTP status of the failed
	// call when one was received; StatusCode is 0 for transport-level
	// failures (connection refused, timeout).
	StatusCode int
	StatusText string

	// Body holds the raw response body, when one could be read.
	Body string

	// Headers holds the response headers, when a response was received.
	Headers http.Header

	// Cause is the underlying error, if any.
	Cause error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d %s)", e.Message, e.StatusCode, e.StatusText)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// AsError extracts an *Error from err's chain, if present.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
