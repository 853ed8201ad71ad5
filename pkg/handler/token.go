package handler

import (
	"context"
	"log/slog"

	"authlink/pkg/handler/spi"
	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

// challengeToken is the WWW-Authenticate challenge returned when client
// authentication at the token endpoint fails.
const challengeToken = `Basic realm="token"`

// TokenRequestParams is the raw input of one token request.
type TokenRequestParams struct {
	// Parameters is the form body of the token request, verbatim.
	Parameters string

	// ClientID and ClientSecret come from the Basic Authorization header
	// when present; clients may instead authenticate via the form body,
	// which travels inside Parameters.
	ClientID     string
	ClientSecret string

	// Mutual-TLS client certificate data, when the transport provides it.
	ClientCertificate     string
	ClientCertificatePath []string
}

// TokenRequestHandler implements the token endpoint, including the resource
// owner password credentials sub-flow, which asks the SPI to verify the
// credentials the remote service extracted from the request.
type TokenRequestHandler struct {
	api    TokenAPI
	spi    spi.TokenRequestSpi
	logger *slog.Logger
}

// NewTokenRequestHandler builds the handler. A nil logger falls back to
// slog.Default().
func NewTokenRequestHandler(api TokenAPI, s spi.TokenRequestSpi, logger *slog.Logger) *TokenRequestHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenRequestHandler{api: api, spi: s, logger: logger}
}

// Handle processes one token request.
func (h *TokenRequestHandler) Handle(ctx context.Context, params TokenRequestParams) (*httputil.Response, error) {
	res, err := h.api.Token(ctx, &models.TokenRequest{
		Parameters:            params.Parameters,
		ClientID:              params.ClientID,
		ClientSecret:          params.ClientSecret,
		ClientCertificate:     params.ClientCertificate,
		ClientCertificatePath: params.ClientCertificatePath,
		Properties:            h.spi.Properties(),
	})
	if err != nil {
		return apiFailure("/auth/token", err)
	}

	switch res.Action {
	case models.TokenActionInvalidClient:
		return httputil.Unauthorized(challengeToken, res.ResponseContent), nil
	case models.TokenActionInternalServerError:
		return httputil.InternalServerError(res.ResponseContent), nil
	case models.TokenActionBadRequest:
		return httputil.BadRequest(res.ResponseContent), nil
	case models.TokenActionPassword:
		return h.password(ctx, res)
	case models.TokenActionOK:
		return httputil.OKJSON(res.ResponseContent), nil
	default:
		return unknownAction("/auth/token", string(res.Action))
	}
}

// password runs the resource owner password credentials sub-flow: the remote
// service has validated the request shape and handed back the username and
// password for the host application to verify.
func (h *TokenRequestHandler) password(ctx context.Context, res *models.TokenResponse) (*httputil.Response, error) {
	subject := h.spi.AuthenticateUser(res.Username, res.Password)
	if subject == "" {
		h.logger.InfoContext(ctx, "resource owner authentication failed",
			"username", res.Username,
		)
		return h.fail(ctx, res.Ticket, models.TokenFailReasonInvalidResourceOwnerCredentials)
	}

	return h.issue(ctx, &models.TokenIssueRequest{
		Ticket:     res.Ticket,
		Subject:    subject,
		Properties: h.spi.Properties(),
	})
}

func (h *TokenRequestHandler) issue(ctx context.Context, req *models.TokenIssueRequest) (*httputil.Response, error) {
	res, err := h.api.TokenIssue(ctx, req)
	if err != nil {
		return apiFailure("/auth/token/issue", err)
	}

	switch res.Action {
	case models.TokenIssueActionInternalServerError:
		return httputil.InternalServerError(res.ResponseContent), nil
	case models.TokenIssueActionOK:
		return httputil.OKJSON(res.ResponseContent), nil
	default:
		return unknownAction("/auth/token/issue", string(res.Action))
	}
}

func (h *TokenRequestHandler) fail(ctx context.Context, ticket string, reason models.TokenFailReason) (*httputil.Response, error) {
	res, err := h.api.TokenFail(ctx, &models.TokenFailRequest{Ticket: ticket, Reason: reason})
	if err != nil {
		return apiFailure("/auth/token/fail", err)
	}

	switch res.Action {
	case models.TokenFailActionInternalServerError:
		return httputil.InternalServerError(res.ResponseContent), nil
	case models.TokenFailActionBadRequest:
		return httputil.BadRequest(res.ResponseContent), nil
	default:
		return unknownAction("/auth/token/fail", string(res.Action))
	}
}
