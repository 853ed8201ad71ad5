// Package models defines the request and response payloads exchanged with the
// AuthLink decision API, one pair per remote endpoint. These are plain data
// containers; all protocol logic lives in pkg/handler and on the remote side.
//
// Every response carries an endpoint-specific action enum. The action value
// space is closed: a value outside the documented set indicates a version
// mismatch between this SDK and the remote service and is treated as fatal by
// the handlers, never defaulted.
package models

// Result is embedded in every response and carries the remote service's own
// result code and human-readable message for diagnostics.
type Result struct {
	ResultCode    string `json:"resultCode,omitempty"`
	ResultMessage string `json:"resultMessage,omitempty"`
}
