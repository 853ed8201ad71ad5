package models

// BackchannelAuthenticationAction enumerates the next actions for
// /backchannel/authentication (CIBA backchannel authentication endpoint).
type BackchannelAuthenticationAction string

const (
	BackchannelAuthenticationActionInternalServerError BackchannelAuthenticationAction = "INTERNAL_SERVER_ERROR"
	BackchannelAuthenticationActionBadRequest          BackchannelAuthenticationAction = "BAD_REQUEST"
	BackchannelAuthenticationActionUnauthorized        BackchannelAuthenticationAction = "UNAUTHORIZED"
	BackchannelAuthenticationActionOK                  BackchannelAuthenticationAction = "OK"
)

// BackchannelIssueAction enumerates the next actions for
// /backchannel/authentication/issue.
type BackchannelIssueAction string

const (
	BackchannelIssueActionInternalServerError BackchannelIssueAction = "INTERNAL_SERVER_ERROR"
	BackchannelIssueActionInvalidTicket       BackchannelIssueAction = "INVALID_TICKET"
	BackchannelIssueActionOK                  BackchannelIssueAction = "OK"
)

// BackchannelFailAction enumerates the next actions for
// /backchannel/authentication/fail.
type BackchannelFailAction string

const (
	BackchannelFailActionInternalServerError BackchannelFailAction = "INTERNAL_SERVER_ERROR"
	BackchannelFailActionBadRequest          BackchannelFailAction = "BAD_REQUEST"
	BackchannelFailActionForbidden           BackchannelFailAction = "FORBIDDEN"
)

// BackchannelFailReason tells the remote service why a backchannel
// authentication request is being rejected.
type BackchannelFailReason string

const (
	BackchannelFailReasonExpiredLoginHintToken BackchannelFailReason = "EXPIRED_LOGIN_HINT_TOKEN"
	BackchannelFailReasonUnknownUserID         BackchannelFailReason = "UNKNOWN_USER_ID"
	BackchannelFailReasonUnauthorizedClient    BackchannelFailReason = "UNAUTHORIZED_CLIENT"
	BackchannelFailReasonMissingUserCode       BackchannelFailReason = "MISSING_USER_CODE"
	BackchannelFailReasonInvalidUserCode       BackchannelFailReason = "INVALID_USER_CODE"
	BackchannelFailReasonAccessDenied          BackchannelFailReason = "ACCESS_DENIED"
	BackchannelFailReasonServerError           BackchannelFailReason = "SERVER_ERROR"
)

// BackchannelCompleteAction enumerates the next actions for
// /backchannel/authentication/complete. NOTIFICATION means the handler must
// deliver the prepared notification to the client's notification endpoint.
type BackchannelCompleteAction string

const (
	BackchannelCompleteActionServerError  BackchannelCompleteAction = "SERVER_ERROR"
	BackchannelCompleteActionNoAction     BackchannelCompleteAction = "NO_ACTION"
	BackchannelCompleteActionNotification BackchannelCompleteAction = "NOTIFICATION"
)

// BackchannelAuthenticationRequest is the first-phase request to
// /backchannel/authentication.
type BackchannelAuthenticationRequest struct {
	Parameters            string   `json:"parameters"`
	ClientID              string   `json:"clientId,omitempty"`
	ClientSecret          string   `json:"clientSecret,omitempty"`
	ClientCertificate     string   `json:"clientCertificate,omitempty"`
	ClientCertificatePath []string `json:"clientCertificatePath,omitempty"`
}

// BackchannelAuthenticationResponse is the first-phase response from
// /backchannel/authentication.
type BackchannelAuthenticationResponse struct {
	Result

	Action          BackchannelAuthenticationAction `json:"action"`
	ResponseContent string                          `json:"responseContent,omitempty"`
	Ticket          string                          `json:"ticket,omitempty"`

	ClientID         int64    `json:"clientId,omitempty"`
	ClientName       string   `json:"clientName,omitempty"`
	Scopes           []string `json:"scopes,omitempty"`
	ClaimNames       []string `json:"claimNames,omitempty"`
	Acrs             []string `json:"acrs,omitempty"`
	HintType         string   `json:"hintType,omitempty"`
	Hint             string   `json:"hint,omitempty"`
	Sub              string   `json:"sub,omitempty"`
	BindingMessage   string   `json:"bindingMessage,omitempty"`
	UserCode         string   `json:"userCode,omitempty"`
	UserCodeRequired bool     `json:"userCodeRequired,omitempty"`
	RequestedExpiry  int64    `json:"requestedExpiry,omitempty"`
	DeliveryMode     string   `json:"deliveryMode,omitempty"`
}

// BackchannelIssueRequest acknowledges a backchannel authentication request,
// returning auth_req_id to the client.
type BackchannelIssueRequest struct {
	Ticket string `json:"ticket"`
}

// BackchannelIssueResponse is the response from
// /backchannel/authentication/issue.
type BackchannelIssueResponse struct {
	Result

	Action          BackchannelIssueAction `json:"action"`
	ResponseContent string                 `json:"responseContent,omitempty"`
	AuthReqID       string                 `json:"authReqId,omitempty"`
	ExpiresIn       int64                  `json:"expiresIn,omitempty"`
	Interval        int64                  `json:"interval,omitempty"`
}

// BackchannelFailRequest aborts a backchannel authentication request.
type BackchannelFailRequest struct {
	Ticket           string                `json:"ticket"`
	Reason           BackchannelFailReason `json:"reason"`
	ErrorDescription string                `json:"errorDescription,omitempty"`
}

// BackchannelFailResponse is the response from
// /backchannel/authentication/fail.
type BackchannelFailResponse struct {
	Result

	Action          BackchannelFailAction `json:"action"`
	ResponseContent string                `json:"responseContent,omitempty"`
}

// BackchannelCompleteRequest reports the end-user authentication result for a
// pending backchannel authentication.
type BackchannelCompleteRequest struct {
	Ticket           string         `json:"ticket"`
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

// BackchannelCompleteResponse is the response from
// /backchannel/authentication/complete.
type BackchannelCompleteResponse struct {
	Result

	Action          BackchannelCompleteAction `json:"action"`
	ResponseContent string                    `json:"responseContent,omitempty"`

	ClientNotificationToken    string `json:"clientNotificationToken,omitempty"`
	ClientNotificationEndpoint string `json:"clientNotificationEndpoint,omitempty"`
	AuthReqID                  string `json:"authReqId,omitempty"`
	AccessToken                string `json:"accessToken,omitempty"`
	RefreshToken               string `json:"refreshToken,omitempty"`
	IDToken                    string `json:"idToken,omitempty"`
}
