package models

// TokenAction enumerates the next actions for /auth/token.
type TokenAction string

const (
	TokenActionInvalidClient       TokenAction = "INVALID_CLIENT"
	TokenActionInternalServerError TokenAction = "INTERNAL_SERVER_ERROR"
	TokenActionBadRequest          TokenAction = "BAD_REQUEST"
	TokenActionPassword            TokenAction = "PASSWORD"
	TokenActionOK                  TokenAction = "OK"
)

// TokenIssueAction enumerates the next actions for /auth/token/issue.
type TokenIssueAction string

const (
	TokenIssueActionInternalServerError TokenIssueAction = "INTERNAL_SERVER_ERROR"
	TokenIssueActionOK                  TokenIssueAction = "OK"
)

// TokenFailAction enumerates the next actions for /auth/token/fail.
type TokenFailAction string

const (
	TokenFailActionInternalServerError TokenFailAction = "INTERNAL_SERVER_ERROR"
	TokenFailActionBadRequest          TokenFailAction = "BAD_REQUEST"
)

// TokenFailReason tells the remote service why token issuance is rejected.
type TokenFailReason string

const (
	TokenFailReasonUnknown                         TokenFailReason = "UNKNOWN"
	TokenFailReasonInvalidResourceOwnerCredentials TokenFailReason = "INVALID_RESOURCE_OWNER_CREDENTIALS"
	TokenFailReasonInvalidTarget                   TokenFailReason = "INVALID_TARGET"
)

// TokenRequest is the first-phase request to /auth/token. Parameters is the
// raw form body of the incoming token request; client credentials come from
// the Authorization header when the client uses Basic authentication.
type TokenRequest struct {
	Parameters            string     `json:"parameters"`
	ClientID              string     `json:"clientId,omitempty"`
	ClientSecret          string     `json:"clientSecret,omitempty"`
	ClientCertificate     string     `json:"clientCertificate,omitempty"`
	ClientCertificatePath []string   `json:"clientCertificatePath,omitempty"`
	Properties            []Property `json:"properties,omitempty"`
}

// TokenResponse is the first-phase response from /auth/token. When the action
// is PASSWORD, Username and Password carry the resource owner credentials the
// handler must verify before completing the flow.
type TokenResponse struct {
	Result

	Action          TokenAction `json:"action"`
	ResponseContent string      `json:"responseContent,omitempty"`
	Ticket          string      `json:"ticket,omitempty"`

	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	Subject      string     `json:"subject,omitempty"`
	Scopes       []string   `json:"scopes,omitempty"`
	Properties   []Property `json:"properties,omitempty"`
	AccessToken  string     `json:"accessToken,omitempty"`
	RefreshToken string     `json:"refreshToken,omitempty"`
	IDToken      string     `json:"idToken,omitempty"`
	GrantType    string     `json:"grantType,omitempty"`
	ClientID     int64      `json:"clientId,omitempty"`
}

// TokenIssueRequest completes a resource owner password flow for the subject
// authenticated by the host application.
type TokenIssueRequest struct {
	Ticket     string     `json:"ticket"`
	Subject    string     `json:"subject"`
	Properties []Property `json:"properties,omitempty"`
}

// TokenIssueResponse is the response from /auth/token/issue.
type TokenIssueResponse struct {
	Result

	Action          TokenIssueAction `json:"action"`
	ResponseContent string           `json:"responseContent,omitempty"`

	AccessToken  string     `json:"accessToken,omitempty"`
	RefreshToken string     `json:"refreshToken,omitempty"`
	Properties   []Property `json:"properties,omitempty"`
}

// TokenFailRequest aborts a token flow with a reason.
type TokenFailRequest struct {
	Ticket string          `json:"ticket"`
	Reason TokenFailReason `json:"reason"`
}

// TokenFailResponse is the response from /auth/token/fail.
type TokenFailResponse struct {
	Result

	Action          TokenFailAction `json:"action"`
	ResponseContent string          `json:"responseContent,omitempty"`
}

// TokenListRequest selects a page of access token records, optionally
// filtered by subject and client identifier. Nil bounds leave paging to the
// remote service's defaults.
type TokenListRequest struct {
	Subject          string
	ClientIdentifier string
	Start            *int
	End              *int
}

// TokenListResponse is a page of access token records.
type TokenListResponse struct {
	Result

	Start        int                 `json:"start"`
	End          int                 `json:"end"`
	TotalCount   int                 `json:"totalCount"`
	AccessTokens []AccessTokenRecord `json:"accessTokens,omitempty"`
}

// AccessTokenRecord is a management-view summary of an issued access token.
type AccessTokenRecord struct {
	AccessTokenHash       string     `json:"accessTokenHash,omitempty"`
	RefreshTokenHash      string     `json:"refreshTokenHash,omitempty"`
	ClientID              int64      `json:"clientId,omitempty"`
	Subject               string     `json:"subject,omitempty"`
	GrantType             string     `json:"grantType,omitempty"`
	Scopes                []string   `json:"scopes,omitempty"`
	AccessTokenExpiresAt  int64      `json:"accessTokenExpiresAt,omitempty"`
	RefreshTokenExpiresAt int64      `json:"refreshTokenExpiresAt,omitempty"`
	CreatedAt             int64      `json:"createdAt,omitempty"`
	LastRefreshedAt       int64      `json:"lastRefreshedAt,omitempty"`
	Properties            []Property `json:"properties,omitempty"`
}
