// Package handler implements the per-flow endpoint handlers of the SDK. Each
// handler builds a typed request from raw HTTP input, calls the remote
// decision API, and maps the action carried by the response to a concrete
// HTTP response descriptor.
//
// Handlers return both a *httputil.Response and an error. The response is
// always usable: when the error is non-nil (transport failure talking to the
// remote API, or an action outside the documented set) the response is the
// mapped 500-class result the endpoint should still serve. Callers log the
// error and write the response.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	"authlink/pkg/httputil"
)

// ErrUnknownAction indicates the remote service answered with an action value
// outside the documented enumeration for the endpoint. This means the SDK and
// the remote service disagree about the protocol version; the handler never
// guesses and always degrades to a 500.
var ErrUnknownAction = errors.New("unknown remote action")

// errorBody builds the JSON error envelope used when this SDK, rather than
// the remote service, is the source of the error response.
func errorBody(description string) string {
	encoded, err := json.Marshal(map[string]string{
		"error":             "server_error",
		"error_description": description,
	})
	if err != nil {
		return `{"error":"server_error"}`
	}
	return string(encoded)
}

// unknownAction maps an out-of-enumeration action to a diagnostic 500 naming
// the endpoint, plus a non-nil error for the caller's logs.
func unknownAction(endpoint string, action string) (*httputil.Response, error) {
	description := fmt.Sprintf("authlink: unknown action %q from %s", action, endpoint)
	return httputil.InternalServerError(errorBody(description)),
		fmt.Errorf("%w: %q from %s", ErrUnknownAction, action, endpoint)
}

// apiFailure maps a transport failure on a remote call to a 500 response.
// The remote error detail stays in the returned error; the HTTP body carries
// only a generic description.
func apiFailure(endpoint string, err error) (*httputil.Response, error) {
	description := fmt.Sprintf("authlink: %s call failed", endpoint)
	return httputil.InternalServerError(errorBody(description)),
		fmt.Errorf("handler: %s call failed: %w", endpoint, err)
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
