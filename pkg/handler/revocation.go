package handler

import (
	"context"
	"log/slog"

	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

const challengeRevocation = `Basic realm="revocation"`

// RevocationRequestParams is the raw input of one revocation request.
type RevocationRequestParams struct {
	Parameters   string
	ClientID     string
	ClientSecret string
}

// RevocationRequestHandler implements an RFC 7009 token revocation endpoint.
type RevocationRequestHandler struct {
	api    RevocationAPI
	logger *slog.Logger
}

// NewRevocationRequestHandler builds the handler. A nil logger falls back to
// slog.Default().
func NewRevocationRequestHandler(api RevocationAPI, logger *slog.Logger) *RevocationRequestHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RevocationRequestHandler{api: api, logger: logger}
}

// Handle processes one revocation request.
func (h *RevocationRequestHandler) Handle(ctx context.Context, params RevocationRequestParams) (*httputil.Response, error) {
	res, err := h.api.Revocation(ctx, &models.RevocationRequest{
		Parameters:   params.Parameters,
		ClientID:     params.ClientID,
		ClientSecret: params.ClientSecret,
	})
	if err != nil {
		return apiFailure("/auth/revocation", err)
	}

	switch res.Action {
	case models.RevocationActionInternalServerError:
		return httputil.InternalServerError(res.ResponseContent), nil
	case models.RevocationActionInvalidClient:
		return httputil.Unauthorized(challengeRevocation, res.ResponseContent), nil
	case models.RevocationActionBadRequest:
		return httputil.BadRequest(res.ResponseContent), nil
	case models.RevocationActionOK:
		// RFC 7009: a successful revocation is a bare 200.
		return httputil.OKJSON(res.ResponseContent), nil
	default:
		return unknownAction("/auth/revocation", string(res.Action))
	}
}
