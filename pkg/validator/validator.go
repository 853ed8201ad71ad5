// Package validator offers resource servers a convenience wrapper around the
// remote introspection endpoint: one call answers whether an access token is
// valid and, when it is not, supplies a ready-to-serve RFC 6750 challenge
// response.
package validator

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

// IntrospectionAPI is the slice of the remote API the validator uses.
type IntrospectionAPI interface {
	Introspection(ctx context.Context, req *models.IntrospectionRequest) (*models.IntrospectionResponse, error)
}

// Request describes one access token validation.
type Request struct {
	// Token is the access token presented by the client, without the
	// Bearer prefix.
	Token string

	// RequiredScopes, when set, must all be covered by the token.
	RequiredScopes []string

	// RequiredSubject, when set, must be the token's subject.
	RequiredSubject string

	// ClientCertificate is the client's TLS certificate in PEM format for
	// certificate-bound token checks.
	ClientCertificate string
}

// Result is the outcome of one validation. When Valid is false,
// ErrorResponse holds the RFC 6750 challenge to return to the caller, and
// Introspection/Err retain the raw outcome for diagnostics.
type Result struct {
	Valid         bool
	Introspection *models.IntrospectionResponse
	Err           error
	ErrorResponse *httputil.Response
}

// AccessTokenValidator validates access tokens through the remote
// introspection endpoint.
type AccessTokenValidator struct {
	api    IntrospectionAPI
	logger *slog.Logger
}

// New builds a validator. A nil logger falls back to slog.Default().
func New(api IntrospectionAPI, logger *slog.Logger) *AccessTokenValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccessTokenValidator{api: api, logger: logger}
}

// Validate checks one access token. It never returns an error: transport
// failures and protocol rejections both yield a Result whose ErrorResponse
// is ready to serve.
func (v *AccessTokenValidator) Validate(ctx context.Context, req Request) *Result {
	if req.Token == "" {
		return &Result{
			ErrorResponse: httputil.WWWAuthenticate(http.StatusUnauthorized,
				`Bearer error="invalid_token",error_description="an access token is required"`),
		}
	}

	res, err := v.api.Introspection(ctx, &models.IntrospectionRequest{
		Token:             req.Token,
		Scopes:            req.RequiredScopes,
		Subject:           req.RequiredSubject,
		ClientCertificate: req.ClientCertificate,
	})
	if err != nil {
		v.logger.ErrorContext(ctx, "introspection call failed", "error", err)
		return &Result{
			Err: err,
			ErrorResponse: httputil.WWWAuthenticate(http.StatusInternalServerError,
				`Bearer error="server_error",error_description="introspection failed"`),
		}
	}

	switch res.Action {
	case models.IntrospectionActionOK:
		return &Result{Valid: true, Introspection: res}
	case models.IntrospectionActionInternalServerError:
		return &Result{Introspection: res, ErrorResponse: httputil.WWWAuthenticate(http.StatusInternalServerError, res.ResponseContent)}
	case models.IntrospectionActionBadRequest:
		return &Result{Introspection: res, ErrorResponse: httputil.WWWAuthenticate(http.StatusBadRequest, res.ResponseContent)}
	case models.IntrospectionActionUnauthorized:
		return &Result{Introspection: res, ErrorResponse: httputil.WWWAuthenticate(http.StatusUnauthorized, res.ResponseContent)}
	case models.IntrospectionActionForbidden:
		return &Result{Introspection: res, ErrorResponse: httputil.WWWAuthenticate(http.StatusForbidden, res.ResponseContent)}
	default:
		err := fmt.Errorf("validator: unknown action %q from /auth/introspection", res.Action)
		v.logger.ErrorContext(ctx, "unknown introspection action", "action", string(res.Action))
		return &Result{
			Introspection: res,
			Err:           err,
			ErrorResponse: httputil.WWWAuthenticate(http.StatusInternalServerError,
				`Bearer error="server_error",error_description="introspection failed"`),
		}
	}
}
