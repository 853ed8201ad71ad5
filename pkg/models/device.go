package models

// DeviceAuthorizationAction enumerates the next actions for
// /auth/device/authorization (RFC 8628 device authorization endpoint).
type DeviceAuthorizationAction string

const (
	DeviceAuthorizationActionInternalServerError DeviceAuthorizationAction = "INTERNAL_SERVER_ERROR"
	DeviceAuthorizationActionBadRequest          DeviceAuthorizationAction = "BAD_REQUEST"
	DeviceAuthorizationActionUnauthorized        DeviceAuthorizationAction = "UNAUTHORIZED"
	DeviceAuthorizationActionOK                  DeviceAuthorizationAction = "OK"
)

// DeviceVerificationAction enumerates the next actions for
// /auth/device/verification, used when an end-user enters a user code.
type DeviceVerificationAction string

const (
	DeviceVerificationActionInternalServerError DeviceVerificationAction = "INTERNAL_SERVER_ERROR"
	DeviceVerificationActionBadRequest          DeviceVerificationAction = "BAD_REQUEST"
	DeviceVerificationActionExpired             DeviceVerificationAction = "EXPIRED"
	DeviceVerificationActionNotExist            DeviceVerificationAction = "NOT_EXIST"
	DeviceVerificationActionValid               DeviceVerificationAction = "VALID"
)

// DeviceCompleteAction enumerates the next actions for /auth/device/complete.
type DeviceCompleteAction string

const (
	DeviceCompleteActionServerError      DeviceCompleteAction = "SERVER_ERROR"
	DeviceCompleteActionUserCodeExpired  DeviceCompleteAction = "USER_CODE_EXPIRED"
	DeviceCompleteActionUserCodeNotExist DeviceCompleteAction = "USER_CODE_NOT_EXIST"
	DeviceCompleteActionInvalidRequest   DeviceCompleteAction = "INVALID_REQUEST"
	DeviceCompleteActionSuccess          DeviceCompleteAction = "SUCCESS"
)

// CompleteResult is the end-user decision reported to the device-flow and
// backchannel complete endpoints.
type CompleteResult string

const (
	CompleteResultAuthorized        CompleteResult = "AUTHORIZED"
	CompleteResultAccessDenied      CompleteResult = "ACCESS_DENIED"
	CompleteResultTransactionFailed CompleteResult = "TRANSACTION_FAILED"
)

// DeviceAuthorizationRequest is the request to /auth/device/authorization.
type DeviceAuthorizationRequest struct {
	Parameters            string   `json:"parameters"`
	ClientID              string   `json:"clientId,omitempty"`
	ClientSecret          string   `json:"clientSecret,omitempty"`
	ClientCertificate     string   `json:"clientCertificate,omitempty"`
	ClientCertificatePath []string `json:"clientCertificatePath,omitempty"`
}

// DeviceAuthorizationResponse is the response from /auth/device/authorization.
type DeviceAuthorizationResponse struct {
	Result

	Action          DeviceAuthorizationAction `json:"action"`
	ResponseContent string                    `json:"responseContent,omitempty"`

	ClientID                int64    `json:"clientId,omitempty"`
	Scopes                  []string `json:"scopes,omitempty"`
	DeviceCode              string   `json:"deviceCode,omitempty"`
	UserCode                string   `json:"userCode,omitempty"`
	VerificationURI         string   `json:"verificationUri,omitempty"`
	VerificationURIComplete string   `json:"verificationUriComplete,omitempty"`
	ExpiresIn               int64    `json:"expiresIn,omitempty"`
	Interval                int64    `json:"interval,omitempty"`
}

// DeviceVerificationRequest looks up the pending authorization bound to a
// user code.
type DeviceVerificationRequest struct {
	UserCode string `json:"userCode"`
}

// DeviceVerificationResponse is the response from /auth/device/verification.
type DeviceVerificationResponse struct {
	Result

	Action DeviceVerificationAction `json:"action"`

	ClientID   int64    `json:"clientId,omitempty"`
	ClientName string   `json:"clientName,omitempty"`
	Scopes     []string `json:"scopes,omitempty"`
	Claims     []string `json:"claimNames,omitempty"`
	Acrs       []string `json:"acrs,omitempty"`
	ExpiresAt  int64    `json:"expiresAt,omitempty"`
}

// DeviceCompleteRequest reports the end-user decision for a device-flow
// authorization identified by its user code. The max-age/ACR/subject checks
// were already performed during verification, so only the decision and the
// issuance payload travel here.
type DeviceCompleteRequest struct {
	UserCode         string         `json:"userCode"`
	Result           CompleteResult `json:"result"`
	Subject          string         `json:"subject,omitempty"`
	Sub              string         `json:"sub,omitempty"`
	AuthTime         int64          `json:"authTime,omitempty"`
	Acr              string         `json:"acr,omitempty"`
	Claims           string         `json:"claims,omitempty"`
	Properties       []Property     `json:"properties,omitempty"`
	Scopes           []string       `json:"scopes,omitempty"`
	ErrorDescription string         `json:"errorDescription,omitempty"`
	ErrorURI         string         `json:"errorUri,omitempty"`
}

// DeviceCompleteResponse is the response from /auth/device/complete.
type DeviceCompleteResponse struct {
	Result

	Action DeviceCompleteAction `json:"action"`
}
