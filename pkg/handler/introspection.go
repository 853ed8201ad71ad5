package handler

import (
	"context"
	"log/slog"

	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

// IntrospectionRequestHandler implements an RFC 7662 token introspection
// endpoint. Authentication of the calling resource server is the host
// application's responsibility; this handler only relays the form
// parameters.
type IntrospectionRequestHandler struct {
	api    IntrospectionAPI
	logger *slog.Logger
}

// NewIntrospectionRequestHandler builds the handler. A nil logger falls back
// to slog.Default().
func NewIntrospectionRequestHandler(api IntrospectionAPI, logger *slog.Logger) *IntrospectionRequestHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &IntrospectionRequestHandler{api: api, logger: logger}
}

// Handle processes one introspection request. parameters is the raw form
// body (token and optional token_type_hint).
func (h *IntrospectionRequestHandler) Handle(ctx context.Context, parameters string) (*httputil.Response, error) {
	res, err := h.api.StandardIntrospection(ctx, &models.StandardIntrospectionRequest{Parameters: parameters})
	if err != nil {
		return apiFailure("/auth/introspection/standard", err)
	}

	switch res.Action {
	case models.StandardIntrospectionActionInternalServerError:
		return httputil.InternalServerError(res.ResponseContent), nil
	case models.StandardIntrospectionActionBadRequest:
		return httputil.BadRequest(res.ResponseContent), nil
	case models.StandardIntrospectionActionOK:
		return httputil.OKJSON(res.ResponseContent), nil
	default:
		return unknownAction("/auth/introspection/standard", string(res.Action))
	}
}
