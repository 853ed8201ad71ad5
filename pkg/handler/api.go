package handler

import (
	"context"

	"authlink/pkg/models"
)

// This file declares the slices of the remote decision API each handler
// depends on. Handlers take the narrowest interface they can so tests mock
// only the calls a flow actually makes; *api.HTTPClient satisfies all of
// them.

// AuthorizationAPI is the slice used by the authorization endpoint handler.
type AuthorizationAPI interface {
	Authorization(ctx context.Context, req *models.AuthorizationRequest) (*models.AuthorizationResponse, error)
	AuthorizationIssuer
	AuthorizationFailer
}

// AuthorizationIssuer and AuthorizationFailer are the second-phase calls of
// the authorization flow, split out so the decision handler does not depend
// on the first phase.
type AuthorizationIssuer interface {
	AuthorizationIssue(ctx context.Context, req *models.AuthorizationIssueRequest) (*models.AuthorizationIssueResponse, error)
}

type AuthorizationFailer interface {
	AuthorizationFail(ctx context.Context, req *models.AuthorizationFailRequest) (*models.AuthorizationFailResponse, error)
}

// AuthorizationDecisionAPI is the slice used by the decision handler: only
// the second-phase authorization endpoints.
type AuthorizationDecisionAPI interface {
	AuthorizationIssuer
	AuthorizationFailer
}

// TokenAPI is the slice used by the token endpoint handler.
type TokenAPI interface {
	Token(ctx context.Context, req *models.TokenRequest) (*models.TokenResponse, error)
	TokenIssue(ctx context.Context, req *models.TokenIssueRequest) (*models.TokenIssueResponse, error)
	TokenFail(ctx context.Context, req *models.TokenFailRequest) (*models.TokenFailResponse, error)
}

// UserInfoAPI is the slice used by the userinfo handler.
type UserInfoAPI interface {
	UserInfo(ctx context.Context, req *models.UserInfoRequest) (*models.UserInfoResponse, error)
	UserInfoIssue(ctx context.Context, req *models.UserInfoIssueRequest) (*models.UserInfoIssueResponse, error)
}

// IntrospectionAPI is the slice used by the introspection endpoint handler.
type IntrospectionAPI interface {
	StandardIntrospection(ctx context.Context, req *models.StandardIntrospectionRequest) (*models.StandardIntrospectionResponse, error)
}

// RevocationAPI is the slice used by the revocation handler.
type RevocationAPI interface {
	Revocation(ctx context.Context, req *models.RevocationRequest) (*models.RevocationResponse, error)
}

// DiscoveryAPI is the slice used by the discovery-document handlers.
type DiscoveryAPI interface {
	ServiceConfiguration(ctx context.Context, pretty bool) (string, error)
	ServiceJWKS(ctx context.Context, pretty, includePrivateKeys bool) (string, error)
}

// DeviceAPI is the slice used by the device-flow handlers.
type DeviceAPI interface {
	DeviceAuthorization(ctx context.Context, req *models.DeviceAuthorizationRequest) (*models.DeviceAuthorizationResponse, error)
	DeviceVerification(ctx context.Context, req *models.DeviceVerificationRequest) (*models.DeviceVerificationResponse, error)
	DeviceComplete(ctx context.Context, req *models.DeviceCompleteRequest) (*models.DeviceCompleteResponse, error)
}

// BackchannelAPI is the slice used by the CIBA handlers.
type BackchannelAPI interface {
	BackchannelAuthentication(ctx context.Context, req *models.BackchannelAuthenticationRequest) (*models.BackchannelAuthenticationResponse, error)
	BackchannelAuthenticationIssue(ctx context.Context, req *models.BackchannelIssueRequest) (*models.BackchannelIssueResponse, error)
	BackchannelAuthenticationFail(ctx context.Context, req *models.BackchannelFailRequest) (*models.BackchannelFailResponse, error)
	BackchannelAuthenticationComplete(ctx context.Context, req *models.BackchannelCompleteRequest) (*models.BackchannelCompleteResponse, error)
}

// PushedAuthReqAPI is the slice used by the PAR handler.
type PushedAuthReqAPI interface {
	PushedAuthReq(ctx context.Context, req *models.PushedAuthReqRequest) (*models.PushedAuthReqResponse, error)
}
