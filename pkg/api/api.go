// Package api provides the typed client for the AuthLink decision API. One
// method exists per remote endpoint; each takes a typed request and returns
// a typed response, or a *Error when the call itself failed (see errors.go
// for the distinction between transport failures and protocol errors).
package api

import (
	"context"

	"authlink/pkg/models"
)

// Client is the remote API surface consumed by the endpoint handlers in
// pkg/handler and by host applications for service/client management.
//
// End-user-facing operations authenticate with the service credentials;
// service and client management operations authenticate with the
// service-owner credentials.
type Client interface {
	// Authorization endpoint (first phase + issue/fail).
	Authorization(ctx context.Context, req *models.AuthorizationRequest) (*models.AuthorizationResponse, error)
	AuthorizationIssue(ctx context.Context, req *models.AuthorizationIssueRequest) (*models.AuthorizationIssueResponse, error)
	AuthorizationFail(ctx context.Context, req *models.AuthorizationFailRequest) (*models.AuthorizationFailResponse, error)

	// Token endpoint (first phase + issue/fail).
	Token(ctx context.Context, req *models.TokenRequest) (*models.TokenResponse, error)
	TokenIssue(ctx context.Context, req *models.TokenIssueRequest) (*models.TokenIssueResponse, error)
	TokenFail(ctx context.Context, req *models.TokenFailRequest) (*models.TokenFailResponse, error)

	// UserInfo endpoint (first phase + issue).
	UserInfo(ctx context.Context, req *models.UserInfoRequest) (*models.UserInfoResponse, error)
	UserInfoIssue(ctx context.Context, req *models.UserInfoIssueRequest) (*models.UserInfoIssueResponse, error)

	// Introspection: the resource-server variant and the RFC 7662 variant.
	Introspection(ctx context.Context, req *models.IntrospectionRequest) (*models.IntrospectionResponse, error)
	StandardIntrospection(ctx context.Context, req *models.StandardIntrospectionRequest) (*models.StandardIntrospectionResponse, error)

	// Revocation endpoint.
	Revocation(ctx context.Context, req *models.RevocationRequest) (*models.RevocationResponse, error)

	// Discovery documents. Both return the raw JSON produced by the remote
	// service; ServiceJWKS returns an empty string when no key set exists.
	ServiceConfiguration(ctx context.Context, pretty bool) (string, error)
	ServiceJWKS(ctx context.Context, pretty, includePrivateKeys bool) (string, error)

	// Device flow (RFC 8628).
	DeviceAuthorization(ctx context.Context, req *models.DeviceAuthorizationRequest) (*models.DeviceAuthorizationResponse, error)
	DeviceVerification(ctx context.Context, req *models.DeviceVerificationRequest) (*models.DeviceVerificationResponse, error)
	DeviceComplete(ctx context.Context, req *models.DeviceCompleteRequest) (*models.DeviceCompleteResponse, error)

	// Backchannel authentication (CIBA).
	BackchannelAuthentication(ctx context.Context, req *models.BackchannelAuthenticationRequest) (*models.BackchannelAuthenticationResponse, error)
	BackchannelAuthenticationIssue(ctx context.Context, req *models.BackchannelIssueRequest) (*models.BackchannelIssueResponse, error)
	BackchannelAuthenticationFail(ctx context.Context, req *models.BackchannelFailRequest) (*models.BackchannelFailResponse, error)
	BackchannelAuthenticationComplete(ctx context.Context, req *models.BackchannelCompleteRequest) (*models.BackchannelCompleteResponse, error)

	// Pushed authorization requests (RFC 9126).
	PushedAuthReq(ctx context.Context, req *models.PushedAuthReqRequest) (*models.PushedAuthReqResponse, error)

	// Service management (service-owner credentials).
	CreateService(ctx context.Context, service *models.Service) (*models.Service, error)
	GetService(ctx context.Context, apiKey int64) (*models.Service, error)
	GetServiceList(ctx context.Context, req *models.ServiceListRequest) (*models.ServiceListResponse, error)
	UpdateService(ctx context.Context, service *models.Service) (*models.Service, error)
	DeleteService(ctx context.Context, apiKey int64) error

	// Client management (service-owner credentials).
	CreateClient(ctx context.Context, client *models.Client) (*models.Client, error)
	GetClient(ctx context.Context, clientID int64) (*models.Client, error)
	GetClientList(ctx context.Context, req *models.ClientListRequest) (*models.ClientListResponse, error)
	UpdateClient(ctx context.Context, client *models.Client) (*models.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error

	// Token management.
	GetTokenList(ctx context.Context, req *models.TokenListRequest) (*models.TokenListResponse, error)
}
