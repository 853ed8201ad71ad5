package httputil

import (
	"encoding/base64"
	"strings"
)

// BasicCredentials is a client id/secret pair parsed from an HTTP Basic
// Authorization header. It is an ephemeral value, never persisted.
type BasicCredentials struct {
	ID     string
	Secret string
}

// ParseBasicCredentials decodes an Authorization header value of the Basic
// scheme. It returns zero credentials when the header is absent, uses a
// different scheme, or does not decode; the remote service rejects
// unauthenticated clients itself.
func ParseBasicCredentials(authorization string) BasicCredentials {
	scheme, encoded, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return BasicCredentials{}
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return BasicCredentials{}
	}

	id, secret, found := strings.Cut(string(decoded), ":")
	if !found {
		return BasicCredentials{ID: id}
	}
	return BasicCredentials{ID: id, Secret: secret}
}
