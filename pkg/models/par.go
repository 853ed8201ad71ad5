package models

// PushedAuthReqAction enumerates the next actions for /pushed_auth_req
// (RFC 9126 pushed authorization request endpoint).
type PushedAuthReqAction string

const (
	PushedAuthReqActionInternalServerError PushedAuthReqAction = "INTERNAL_SERVER_ERROR"
	PushedAuthReqActionBadRequest          PushedAuthReqAction = "BAD_REQUEST"
	PushedAuthReqActionUnauthorized        PushedAuthReqAction = "UNAUTHORIZED"
	PushedAuthReqActionForbidden           PushedAuthReqAction = "FORBIDDEN"
	PushedAuthReqActionPayloadTooLarge     PushedAuthReqAction = "PAYLOAD_TOO_LARGE"
	PushedAuthReqActionCreated             PushedAuthReqAction = "CREATED"
)

// PushedAuthReqRequest carries the raw parameters of a pushed authorization
// request plus the client credentials from the Authorization header.
type PushedAuthReqRequest struct {
	Parameters            string   `json:"parameters"`
	ClientID              string   `json:"clientId,omitempty"`
	ClientSecret          string   `json:"clientSecret,omitempty"`
	ClientCertificate     string   `json:"clientCertificate,omitempty"`
	ClientCertificatePath []string `json:"clientCertificatePath,omitempty"`
}

// PushedAuthReqResponse is the response from /pushed_auth_req.
type PushedAuthReqResponse struct {
	Result

	Action          PushedAuthReqAction `json:"action"`
	ResponseContent string              `json:"responseContent,omitempty"`
	RequestURI      string              `json:"requestUri,omitempty"`
}
