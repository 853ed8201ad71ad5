package models

// RevocationAction enumerates the next actions for /auth/revocation.
type RevocationAction string

const (
	RevocationActionInternalServerError RevocationAction = "INTERNAL_SERVER_ERROR"
	RevocationActionInvalidClient       RevocationAction = "INVALID_CLIENT"
	RevocationActionBadRequest          RevocationAction = "BAD_REQUEST"
	RevocationActionOK                  RevocationAction = "OK"
)

// RevocationRequest carries the raw form parameters of an RFC 7009 token
// revocation request plus the client credentials from the Authorization
// header.
type RevocationRequest struct {
	Parameters   string `json:"parameters"`
	ClientID     string `json:"clientId,omitempty"`
	ClientSecret string `json:"clientSecret,omitempty"`
}

// RevocationResponse is the response from /auth/revocation.
type RevocationResponse struct {
	Result

	Action          RevocationAction `json:"action"`
	ResponseContent string           `json:"responseContent,omitempty"`
}
