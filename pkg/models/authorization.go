package models

// AuthorizationAction enumerates the next actions the remote service can
// request after processing an authorization request.
type AuthorizationAction string

const (
	AuthorizationActionInternalServerError AuthorizationAction = "INTERNAL_SERVER_ERROR"
	AuthorizationActionBadRequest          AuthorizationAction = "BAD_REQUEST"
	AuthorizationActionLocation            AuthorizationAction = "LOCATION"
	AuthorizationActionForm                AuthorizationAction = "FORM"
	AuthorizationActionInteraction         AuthorizationAction = "INTERACTION"
	AuthorizationActionNoInteraction       AuthorizationAction = "NO_INTERACTION"
)

// AuthorizationIssueAction enumerates next actions for /auth/authorization/issue.
type AuthorizationIssueAction string

const (
	AuthorizationIssueActionInternalServerError AuthorizationIssueAction = "INTERNAL_SERVER_ERROR"
	AuthorizationIssueActionBadRequest          AuthorizationIssueAction = "BAD_REQUEST"
	AuthorizationIssueActionLocation            AuthorizationIssueAction = "LOCATION"
	AuthorizationIssueActionForm                AuthorizationIssueAction = "FORM"
)

// AuthorizationFailAction enumerates next actions for /auth/authorization/fail.
type AuthorizationFailAction string

const (
	AuthorizationFailActionInternalServerError AuthorizationFailAction = "INTERNAL_SERVER_ERROR"
	AuthorizationFailActionBadRequest          AuthorizationFailAction = "BAD_REQUEST"
	AuthorizationFailActionLocation            AuthorizationFailAction = "LOCATION"
	AuthorizationFailActionForm                AuthorizationFailAction = "FORM"
)

// AuthorizationFailReason tells the remote service why the authorization
// request is being rejected, so it can build the spec-correct error response.
type AuthorizationFailReason string

const (
	FailReasonUnknown          AuthorizationFailReason = "UNKNOWN"
	FailReasonNotLoggedIn      AuthorizationFailReason = "NOT_LOGGED_IN"
	FailReasonExceedsMaxAge    AuthorizationFailReason = "EXCEEDS_MAX_AGE"
	FailReasonDifferentSubject AuthorizationFailReason = "DIFFERENT_SUBJECT"
	FailReasonACRNotSatisfied  AuthorizationFailReason = "ACR_NOT_SATISFIED"
	FailReasonDenied           AuthorizationFailReason = "DENIED"
	FailReasonNotAuthenticated AuthorizationFailReason = "NOT_AUTHENTICATED"
	FailReasonServerError      AuthorizationFailReason = "SERVER_ERROR"
)

// AuthorizationRequest is the first-phase request to /auth/authorization.
// Parameters is the raw query string or form body of the incoming
// authorization request, passed through verbatim.
type AuthorizationRequest struct {
	Parameters string `json:"parameters"`
}

// AuthorizationResponse is the first-phase response from /auth/authorization.
type AuthorizationResponse struct {
	Result

	Action          AuthorizationAction `json:"action"`
	ResponseContent string              `json:"responseContent,omitempty"`
	Ticket          string              `json:"ticket,omitempty"`

	Service *Service `json:"service,omitempty"`
	Client  *Client  `json:"client,omitempty"`

	// Requirements the handler must verify locally before issuing when the
	// action is NO_INTERACTION.
	Subject      string   `json:"subject,omitempty"`
	MaxAge       int64    `json:"maxAge,omitempty"`
	Acrs         []string `json:"acrs,omitempty"`
	AcrEssential bool     `json:"acrEssential,omitempty"`

	Scopes        []string `json:"scopes,omitempty"`
	Claims        []string `json:"claims,omitempty"`
	ClaimsLocales []string `json:"claimsLocales,omitempty"`
	UILocales     []string `json:"uiLocales,omitempty"`
	Prompts       []string `json:"prompts,omitempty"`
	LoginHint     string   `json:"loginHint,omitempty"`
}

// AuthorizationIssueRequest completes an authorization flow by issuing an
// authorization code, ID token and/or access token for the given subject.
type AuthorizationIssueRequest struct {
	Ticket     string     `json:"ticket"`
	Subject    string     `json:"subject"`
	AuthTime   int64      `json:"authTime,omitempty"`
	Acr        string     `json:"acr,omitempty"`
	Sub        string     `json:"sub,omitempty"`
	Claims     string     `json:"claims,omitempty"`
	Properties []Property `json:"properties,omitempty"`
	Scopes     []string   `json:"scopes,omitempty"`
}

// AuthorizationIssueResponse is the response from /auth/authorization/issue.
type AuthorizationIssueResponse struct {
	Result

	Action          AuthorizationIssueAction `json:"action"`
	ResponseContent string                   `json:"responseContent,omitempty"`

	AccessToken          string `json:"accessToken,omitempty"`
	AccessTokenExpiresAt int64  `json:"accessTokenExpiresAt,omitempty"`
	AccessTokenDuration  int64  `json:"accessTokenDuration,omitempty"`
	AuthorizationCode    string `json:"authorizationCode,omitempty"`
	IDToken              string `json:"idToken,omitempty"`
	JwtAccessToken       string `json:"jwtAccessToken,omitempty"`
}

// AuthorizationFailRequest aborts an authorization flow with a reason.
type AuthorizationFailRequest struct {
	Ticket      string                  `json:"ticket"`
	Reason      AuthorizationFailReason `json:"reason"`
	Description string                  `json:"description,omitempty"`
}

// AuthorizationFailResponse is the response from /auth/authorization/fail.
type AuthorizationFailResponse struct {
	Result

	Action          AuthorizationFailAction `json:"action"`
	ResponseContent string                  `json:"responseContent,omitempty"`
}
