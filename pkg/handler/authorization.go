package handler

import (
	"context"
	"log/slog"
	"time"

	"authlink/pkg/claims"
	"authlink/pkg/handler/spi"
	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

// AuthorizationRequestHandler implements the authorization endpoint. It
// forwards the raw request parameters to the remote service and dispatches on
// the returned action. Interactive requests are delegated to the SPI's page
// generator; prompt=none requests are decided here against the SPI's
// authentication state.
type AuthorizationRequestHandler struct {
	api    AuthorizationAPI
	spi    spi.AuthorizationRequestSpi
	logger *slog.Logger

	// now is replaceable in tests for the max-age boundary.
	now func() time.Time
}

// NewAuthorizationRequestHandler builds the handler. A nil logger falls back
// to slog.Default().
func NewAuthorizationRequestHandler(api AuthorizationAPI, s spi.AuthorizationRequestSpi, logger *slog.Logger) *AuthorizationRequestHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthorizationRequestHandler{
		api:    api,
		spi:    s,
		logger: logger,
		now:    time.Now,
	}
}

// Handle processes one authorization request. parameters is the raw query
// string (GET) or form body (POST) of the incoming request.
func (h *AuthorizationRequestHandler) Handle(ctx context.Context, parameters string) (*httputil.Response, error) {
	res, err := h.api.Authorization(ctx, &models.AuthorizationRequest{Parameters: parameters})
	if err != nil {
		return apiFailure("/auth/authorization", err)
	}

	switch res.Action {
	case models.AuthorizationActionInternalServerError:
		return httputil.InternalServerError(res.ResponseContent), nil
	case models.AuthorizationActionBadRequest:
		return httputil.BadRequest(res.ResponseContent), nil
	case models.AuthorizationActionLocation:
		return httputil.Location(res.ResponseContent), nil
	case models.AuthorizationActionForm:
		return httputil.OKHTML(res.ResponseContent), nil
	case models.AuthorizationActionInteraction:
		return h.interact(ctx, res)
	case models.AuthorizationActionNoInteraction:
		return h.noInteraction(ctx, res)
	default:
		return unknownAction("/auth/authorization", string(res.Action))
	}
}

// interact hands the response to the host application so it can render the
// authorization page. The flow resumes later through the decision handler.
func (h *AuthorizationRequestHandler) interact(ctx context.Context, res *models.AuthorizationResponse) (*httputil.Response, error) {
	page, err := h.spi.GenerateAuthorizationPage(res)
	if err != nil {
		h.logger.ErrorContext(ctx, "authorization page generation failed",
			"ticket", res.Ticket,
			"error", err,
		)
		return httputil.InternalServerError(errorBody("authlink: authorization page generation failed")), err
	}
	return page, nil
}

// noInteraction decides a prompt=none request without any UI. The checks run
// in a fixed order; the first unmet requirement aborts the flow through the
// remote fail endpoint so the error response is built to spec by the remote
// service.
func (h *AuthorizationRequestHandler) noInteraction(ctx context.Context, res *models.AuthorizationResponse) (*httputil.Response, error) {
	// 1. An end-user must be logged in.
	if !h.spi.IsUserAuthenticated() {
		return authorizationFail(ctx, h.api, h.logger, res.Ticket, models.FailReasonNotLoggedIn)
	}

	// 2. The authentication must be recent enough. Expiry is strict: the
	// instant authTime+maxAge itself still passes.
	authTime := h.spi.UserAuthenticatedAt()
	if res.MaxAge > 0 && h.now().Unix() > authTime+res.MaxAge {
		return authorizationFail(ctx, h.api, h.logger, res.Ticket, models.FailReasonExceedsMaxAge)
	}

	// 3. The logged-in user must be the requested one, when one was named.
	subject := h.spi.UserSubject()
	if res.Subject != "" && res.Subject != subject {
		return authorizationFail(ctx, h.api, h.logger, res.Ticket, models.FailReasonDifferentSubject)
	}

	// 4. One of the requested ACRs must be satisfied when they are marked
	// essential; non-essential ACR mismatches proceed.
	acr := h.spi.Acr()
	if len(res.Acrs) > 0 && !containsString(res.Acrs, acr) && res.AcrEssential {
		return authorizationFail(ctx, h.api, h.logger, res.Ticket, models.FailReasonACRNotSatisfied)
	}

	collected := claims.NewCollector(h.spi).CollectJSON(subject, res.Claims, res.ClaimsLocales)

	return authorizationIssue(ctx, h.api, h.logger, &models.AuthorizationIssueRequest{
		Ticket:     res.Ticket,
		Subject:    subject,
		AuthTime:   authTime,
		Acr:        acr,
		Sub:        h.spi.Sub(),
		Claims:     collected,
		Properties: h.spi.Properties(),
		Scopes:     h.spi.Scopes(),
	})
}

// authorizationIssue completes an authorization flow and maps the second
// phase action. Shared by the request handler's prompt=none path and the
// decision handler.
func authorizationIssue(ctx context.Context, api AuthorizationIssuer, logger *slog.Logger, req *models.AuthorizationIssueRequest) (*httputil.Response, error) {
	res, err := api.AuthorizationIssue(ctx, req)
	if err != nil {
		return apiFailure("/auth/authorization/issue", err)
	}

	switch res.Action {
	case models.AuthorizationIssueActionInternalServerError:
		return httputil.InternalServerError(res.ResponseContent), nil
	case models.AuthorizationIssueActionBadRequest:
		return httputil.BadRequest(res.ResponseContent), nil
	case models.AuthorizationIssueActionLocation:
		return httputil.Location(res.ResponseContent), nil
	case models.AuthorizationIssueActionForm:
		return httputil.OKHTML(res.ResponseContent), nil
	default:
		return unknownAction("/auth/authorization/issue", string(res.Action))
	}
}

// authorizationFail aborts an authorization flow with the given reason and
// maps the fail call's own action, not the original one.
func authorizationFail(ctx context.Context, api AuthorizationFailer, logger *slog.Logger, ticket string, reason models.AuthorizationFailReason) (*httputil.Response, error) {
	logger.InfoContext(ctx, "authorization rejected",
		"ticket", ticket,
		"reason", string(reason),
	)

	res, err := api.AuthorizationFail(ctx, &models.AuthorizationFailRequest{Ticket: ticket, Reason: reason})
	if err != nil {
		return apiFailure("/auth/authorization/fail", err)
	}

	switch res.Action {
	case models.AuthorizationFailActionInternalServerError:
		return httputil.InternalServerError(res.ResponseContent), nil
	case models.AuthorizationFailActionBadRequest:
		return httputil.BadRequest(res.ResponseContent), nil
	case models.AuthorizationFailActionLocation:
		return httputil.Location(res.ResponseContent), nil
	case models.AuthorizationFailActionForm:
		return httputil.OKHTML(res.ResponseContent), nil
	default:
		return unknownAction("/auth/authorization/fail", string(res.Action))
	}
}
