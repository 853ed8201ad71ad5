package spi

import (
	"errors"

	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

// ErrNotImplemented is returned by adapter methods that a host application
// must actively implement for the flow to work.
var ErrNotImplemented = errors.New("spi: not implemented")

// AuthorizationRequestAdapter is a no-op AuthorizationRequestSpi. Embed it
// and override the methods the flow needs; GenerateAuthorizationPage must
// always be overridden for interactive flows.
type AuthorizationRequestAdapter struct{}

var _ AuthorizationRequestSpi = AuthorizationRequestAdapter{}

func (AuthorizationRequestAdapter) UserClaimValue(_, _, _ string) any { return nil }
func (AuthorizationRequestAdapter) IsUserAuthenticated() bool         { return false }
func (AuthorizationRequestAdapter) UserAuthenticatedAt() int64        { return 0 }
func (AuthorizationRequestAdapter) UserSubject() string               { return "" }
func (AuthorizationRequestAdapter) Acr() string                       { return "" }
func (AuthorizationRequestAdapter) Sub() string                       { return "" }
func (AuthorizationRequestAdapter) Properties() []models.Property     { return nil }
func (AuthorizationRequestAdapter) Scopes() []string                  { return nil }

func (AuthorizationRequestAdapter) GenerateAuthorizationPage(_ *models.AuthorizationResponse) (*httputil.Response, error) {
	return nil, ErrNotImplemented
}

// AuthorizationDecisionAdapter is a no-op AuthorizationDecisionSpi.
type AuthorizationDecisionAdapter struct{}

var _ AuthorizationDecisionSpi = AuthorizationDecisionAdapter{}

func (AuthorizationDecisionAdapter) UserClaimValue(_, _, _ string) any { return nil }
func (AuthorizationDecisionAdapter) ClientAuthorized() bool            { return false }
func (AuthorizationDecisionAdapter) UserAuthenticatedAt() int64        { return 0 }
func (AuthorizationDecisionAdapter) UserSubject() string               { return "" }
func (AuthorizationDecisionAdapter) Acr() string                       { return "" }
func (AuthorizationDecisionAdapter) Sub() string                       { return "" }
func (AuthorizationDecisionAdapter) Properties() []models.Property     { return nil }
func (AuthorizationDecisionAdapter) Scopes() []string                  { return nil }

// TokenRequestAdapter is a no-op TokenRequestSpi; AuthenticateUser rejects
// everyone until overridden.
type TokenRequestAdapter struct{}

var _ TokenRequestSpi = TokenRequestAdapter{}

func (TokenRequestAdapter) AuthenticateUser(_, _ string) string { return "" }
func (TokenRequestAdapter) Properties() []models.Property       { return nil }

// UserInfoRequestAdapter is a no-op UserInfoRequestSpi.
type UserInfoRequestAdapter struct{}

var _ UserInfoRequestSpi = UserInfoRequestAdapter{}

func (UserInfoRequestAdapter) UserClaimValue(_, _, _ string) any      { return nil }
func (UserInfoRequestAdapter) PrepareUserClaims(_ string, _ []string) {}

// DeviceVerificationAdapter is a no-op DeviceVerificationSpi; the page
// generator must be overridden.
type DeviceVerificationAdapter struct{}

var _ DeviceVerificationSpi = DeviceVerificationAdapter{}

func (DeviceVerificationAdapter) GenerateVerificationPage(_ *models.DeviceVerificationResponse) (*httputil.Response, error) {
	return nil, ErrNotImplemented
}

// CompleteRequestAdapter is a no-op CompleteRequestSpi.
type CompleteRequestAdapter struct{}

var _ CompleteRequestSpi = CompleteRequestAdapter{}

func (CompleteRequestAdapter) UserClaimValue(_, _, _ string) any { return nil }
func (CompleteRequestAdapter) Properties() []models.Property     { return nil }
func (CompleteRequestAdapter) Scopes() []string                  { return nil }

// BackchannelAuthenticationAdapter is a no-op BackchannelAuthenticationSpi.
type BackchannelAuthenticationAdapter struct{}

var _ BackchannelAuthenticationSpi = BackchannelAuthenticationAdapter{}

func (BackchannelAuthenticationAdapter) StartUserAuthentication(_ *models.BackchannelAuthenticationResponse) {
}
