package models

// UserInfoAction enumerates the next actions for /auth/userinfo.
type UserInfoAction string

const (
	UserInfoActionInternalServerError UserInfoAction = "INTERNAL_SERVER_ERROR"
	UserInfoActionBadRequest          UserInfoAction = "BAD_REQUEST"
	UserInfoActionUnauthorized        UserInfoAction = "UNAUTHORIZED"
	UserInfoActionForbidden           UserInfoAction = "FORBIDDEN"
	UserInfoActionOK                  UserInfoAction = "OK"
)

// UserInfoIssueAction enumerates the next actions for /auth/userinfo/issue.
// JSON and JWT indicate a successful response whose body is a plain JSON
// document or a signed/encrypted JWT respectively.
type UserInfoIssueAction string

const (
	UserInfoIssueActionInternalServerError UserInfoIssueAction = "INTERNAL_SERVER_ERROR"
	UserInfoIssueActionBadRequest          UserInfoIssueAction = "BAD_REQUEST"
	UserInfoIssueActionUnauthorized        UserInfoIssueAction = "UNAUTHORIZED"
	UserInfoIssueActionForbidden           UserInfoIssueAction = "FORBIDDEN"
	UserInfoIssueActionJSON                UserInfoIssueAction = "JSON"
	UserInfoIssueActionJWT                 UserInfoIssueAction = "JWT"
)

// UserInfoRequest is the first-phase request to /auth/userinfo.
type UserInfoRequest struct {
	Token             string `json:"token"`
	ClientCertificate string `json:"clientCertificate,omitempty"`
}

// UserInfoResponse is the first-phase response from /auth/userinfo. Claims
// lists the claim names requested for the subject, each optionally suffixed
// with a #languageTag.
type UserInfoResponse struct {
	Result

	Action          UserInfoAction `json:"action"`
	ResponseContent string         `json:"responseContent,omitempty"`

	Subject       string   `json:"subject,omitempty"`
	Scopes        []string `json:"scopes,omitempty"`
	Claims        []string `json:"claims,omitempty"`
	ClaimsLocales []string `json:"claimsLocales,omitempty"`
	Token         string   `json:"token,omitempty"`
	ClientID      int64    `json:"clientId,omitempty"`
	ClientIDAlias string   `json:"clientIdAlias,omitempty"`
}

// UserInfoIssueRequest materializes the userinfo response body from the
// collected claim values (a JSON object serialized to a string).
type UserInfoIssueRequest struct {
	Token  string `json:"token"`
	Claims string `json:"claims,omitempty"`
}

// UserInfoIssueResponse is the response from /auth/userinfo/issue.
type UserInfoIssueResponse struct {
	Result

	Action          UserInfoIssueAction `json:"action"`
	ResponseContent string              `json:"responseContent,omitempty"`
}
