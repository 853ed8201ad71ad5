package models

// IntrospectionAction enumerates the next actions for /auth/introspection,
// the internal endpoint resource servers use to validate access tokens.
type IntrospectionAction string

const (
	IntrospectionActionInternalServerError IntrospectionAction = "INTERNAL_SERVER_ERROR"
	IntrospectionActionBadRequest          IntrospectionAction = "BAD_REQUEST"
	IntrospectionActionUnauthorized        IntrospectionAction = "UNAUTHORIZED"
	IntrospectionActionForbidden           IntrospectionAction = "FORBIDDEN"
	IntrospectionActionOK                  IntrospectionAction = "OK"
)

// StandardIntrospectionAction enumerates the next actions for
// /auth/introspection/standard, which backs an RFC 7662 introspection
// endpoint exposed to clients.
type StandardIntrospectionAction string

const (
	StandardIntrospectionActionInternalServerError StandardIntrospectionAction = "INTERNAL_SERVER_ERROR"
	StandardIntrospectionActionBadRequest          StandardIntrospectionAction = "BAD_REQUEST"
	StandardIntrospectionActionOK                  StandardIntrospectionAction = "OK"
)

// IntrospectionRequest asks the remote service whether an access token is
// valid, covers the given scopes, and belongs to the given subject.
type IntrospectionRequest struct {
	Token             string   `json:"token"`
	Scopes            []string `json:"scopes,omitempty"`
	Subject           string   `json:"subject,omitempty"`
	ClientCertificate string   `json:"clientCertificate,omitempty"`
}

// IntrospectionResponse is the response from /auth/introspection. On
// non-OK actions ResponseContent carries the value for a WWW-Authenticate
// header as defined by RFC 6750.
type IntrospectionResponse struct {
	Result

	Action          IntrospectionAction `json:"action"`
	ResponseContent string              `json:"responseContent,omitempty"`

	ClientID      int64      `json:"clientId,omitempty"`
	ClientIDAlias string     `json:"clientIdAlias,omitempty"`
	Subject       string     `json:"subject,omitempty"`
	Scopes        []string   `json:"scopes,omitempty"`
	Existent      bool       `json:"existent,omitempty"`
	Usable        bool       `json:"usable,omitempty"`
	Sufficient    bool       `json:"sufficient,omitempty"`
	Refreshable   bool       `json:"refreshable,omitempty"`
	ExpiresAt     int64      `json:"expiresAt,omitempty"`
	Properties    []Property `json:"properties,omitempty"`
}

// StandardIntrospectionRequest carries the raw form parameters of an RFC 7662
// introspection request (token and optional token_type_hint).
type StandardIntrospectionRequest struct {
	Parameters string `json:"parameters"`
}

// StandardIntrospectionResponse is the response from
// /auth/introspection/standard.
type StandardIntrospectionResponse struct {
	Result

	Action          StandardIntrospectionAction `json:"action"`
	ResponseContent string                      `json:"responseContent,omitempty"`
}
