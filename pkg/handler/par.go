package handler

import (
	"context"
	"log/slog"

	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

const challengePAR = `Basic realm="pushed_auth_req"`

// PushedAuthReqParams is the raw input of one pushed authorization request.
type PushedAuthReqParams struct {
	Parameters            string
	ClientID              string
	ClientSecret          string
	ClientCertificate     string
	ClientCertificatePath []string
}

// PushedAuthReqHandler implements an RFC 9126 pushed authorization request
// endpoint.
type PushedAuthReqHandler struct {
	api    PushedAuthReqAPI
	logger *slog.Logger
}

// NewPushedAuthReqHandler builds the handler. A nil logger falls back to
// slog.Default().
func NewPushedAuthReqHandler(api PushedAuthReqAPI, logger *slog.Logger) *PushedAuthReqHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PushedAuthReqHandler{api: api, logger: logger}
}

// Handle processes one pushed authorization request.
func (h *PushedAuthReqHandler) Handle(ctx context.Context, params PushedAuthReqParams) (*httputil.Response, error) {
	res, err := h.api.PushedAuthReq(ctx, &models.PushedAuthReqRequest{
		Parameters:            params.Parameters,
		ClientID:              params.ClientID,
		ClientSecret:          params.ClientSecret,
		ClientCertificate:     params.ClientCertificate,
		ClientCertificatePath: params.ClientCertificatePath,
	})
	if err != nil {
		return apiFailure("/pushed_auth_req", err)
	}

	switch res.Action {
	case models.PushedAuthReqActionInternalServerError:
		return httputil.InternalServerError(res.ResponseContent), nil
	case models.PushedAuthReqActionBadRequest:
		return httputil.BadRequest(res.ResponseContent), nil
	case models.PushedAuthReqActionUnauthorized:
		return httputil.Unauthorized(challengePAR, res.ResponseContent), nil
	case models.PushedAuthReqActionForbidden:
		return httputil.Forbidden(res.ResponseContent), nil
	case models.PushedAuthReqActionPayloadTooLarge:
		return httputil.PayloadTooLarge(res.ResponseContent), nil
	case models.PushedAuthReqActionCreated:
		return httputil.Created(res.ResponseContent), nil
	default:
		return unknownAction("/pushed_auth_req", string(res.Action))
	}
}
