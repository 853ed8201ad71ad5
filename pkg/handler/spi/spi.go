// Package spi defines the service provider interfaces a host application
// implements to supply user authentication state, consent decisions and
// claim values to the endpoint handlers. Adapters with safe defaults live in
// adapters.go; embed one and override only what the flow needs.
package spi

import (
	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

// UserClaimProvider supplies claim values for a subject. A nil return means
// the claim has no value for that subject/locale combination. languageTag is
// empty for an untagged lookup.
type UserClaimProvider interface {
	UserClaimValue(subject, claimName, languageTag string) any
}

// AuthorizationRequestSpi supplies everything the authorization endpoint
// handler needs: the current authentication state for prompt=none
// processing, token decoration, claim values, and the consent page for
// interactive flows.
type AuthorizationRequestSpi interface {
	UserClaimProvider

	// IsUserAuthenticated reports whether an end-user is currently logged
	// in at the authorization server.
	IsUserAuthenticated() bool

	// UserAuthenticatedAt returns the time of that authentication as epoch
	// seconds, or 0 when unknown.
	UserAuthenticatedAt() int64

	// UserSubject returns the current end-user's subject, or "" when no
	// user is authenticated.
	UserSubject() string

	// Acr returns the authentication context class reference satisfied by
	// the current authentication, or "".
	Acr() string

	// Sub returns a pairwise subject override for the sub claim, or "" to
	// use the subject as-is.
	Sub() string

	// Properties returns extra properties to attach to issued tokens, or
	// nil.
	Properties() []models.Property

	// Scopes returns a replacement scope set, or nil to keep the scopes
	// the remote service determined.
	Scopes() []string

	// GenerateAuthorizationPage renders the consent page for an
	// interactive authorization request.
	GenerateAuthorizationPage(res *models.AuthorizationResponse) (*httputil.Response, error)
}

// AuthorizationDecisionSpi supplies the end-user's consent decision after the
// host application has shown the authorization page.
type AuthorizationDecisionSpi interface {
	UserClaimProvider

	// ClientAuthorized reports whether the end-user granted authorization
	// to the client.
	ClientAuthorized() bool

	// UserAuthenticatedAt returns the authentication time as epoch seconds.
	UserAuthenticatedAt() int64

	// UserSubject returns the authenticated end-user's subject, or "" when
	// the user could not be authenticated.
	UserSubject() string

	Acr() string
	Sub() string
	Properties() []models.Property
	Scopes() []string
}

// TokenRequestSpi supports the resource owner password credentials grant.
type TokenRequestSpi interface {
	// AuthenticateUser verifies the resource owner's credentials and
	// returns the subject, or "" when authentication failed.
	AuthenticateUser(username, password string) string

	// Properties returns extra properties to attach to issued tokens, or
	// nil.
	Properties() []models.Property
}

// UserInfoRequestSpi supplies claim values for the userinfo endpoint.
type UserInfoRequestSpi interface {
	UserClaimProvider

	// PrepareUserClaims is called once per request before any claim
	// lookups, so implementations can batch-load the subject's record.
	PrepareUserClaims(subject string, claimNames []string)
}

// DeviceVerificationSpi renders the pages of the device-flow verification
// interaction.
type DeviceVerificationSpi interface {
	// GenerateVerificationPage renders the approve/deny page for a valid
	// user code.
	GenerateVerificationPage(res *models.DeviceVerificationResponse) (*httputil.Response, error)
}

// CompleteRequestSpi supplies the issuance payload for the device-flow and
// backchannel complete calls. The max-age/ACR/subject checks were already
// performed earlier in those flows, so only claim values and token
// decoration remain.
type CompleteRequestSpi interface {
	UserClaimProvider

	Properties() []models.Property
	Scopes() []string
}

// BackchannelAuthenticationSpi lets the host start its asynchronous end-user
// authentication once a backchannel request has been accepted.
type BackchannelAuthenticationSpi interface {
	// StartUserAuthentication is invoked after the remote service accepted
	// the request and before auth_req_id is returned to the client. The
	// host typically enqueues a job that later drives the complete
	// handler.
	StartUserAuthentication(res *models.BackchannelAuthenticationResponse)
}
