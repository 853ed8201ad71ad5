package handler

import (
	"context"
	"log/slog"
	"net/http"

	"authlink/pkg/claims"
	"authlink/pkg/handler/spi"
	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

// UserInfoRequestHandler implements the userinfo endpoint. Error conditions
// are delivered as RFC 6750 WWW-Authenticate challenges built by the remote
// service; a valid token leads to claim collection and a second remote call
// that materializes the JSON or JWT response body.
type UserInfoRequestHandler struct {
	api    UserInfoAPI
	spi    spi.UserInfoRequestSpi
	logger *slog.Logger
}

// NewUserInfoRequestHandler builds the handler. A nil logger falls back to
// slog.Default().
func NewUserInfoRequestHandler(api UserInfoAPI, s spi.UserInfoRequestSpi, logger *slog.Logger) *UserInfoRequestHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserInfoRequestHandler{api: api, spi: s, logger: logger}
}

// Handle processes one userinfo request for the given access token.
func (h *UserInfoRequestHandler) Handle(ctx context.Context, token string) (*httputil.Response, error) {
	if token == "" {
		// No token at all: a bare challenge per RFC 6750 section 3.
		return httputil.WWWAuthenticate(http.StatusUnauthorized, `Bearer error="invalid_token",error_description="an access token is required"`), nil
	}

	res, err := h.api.UserInfo(ctx, &models.UserInfoRequest{Token: token})
	if err != nil {
		return apiFailure("/auth/userinfo", err)
	}

	switch res.Action {
	case models.UserInfoActionInternalServerError:
		return httputil.WWWAuthenticate(http.StatusInternalServerError, res.ResponseContent), nil
	case models.UserInfoActionBadRequest:
		return httputil.WWWAuthenticate(http.StatusBadRequest, res.ResponseContent), nil
	case models.UserInfoActionUnauthorized:
		return httputil.WWWAuthenticate(http.StatusUnauthorized, res.ResponseContent), nil
	case models.UserInfoActionForbidden:
		return httputil.WWWAuthenticate(http.StatusForbidden, res.ResponseContent), nil
	case models.UserInfoActionOK:
		return h.issue(ctx, res)
	default:
		return unknownAction("/auth/userinfo", string(res.Action))
	}
}

func (h *UserInfoRequestHandler) issue(ctx context.Context, res *models.UserInfoResponse) (*httputil.Response, error) {
	var collected string
	if len(res.Claims) > 0 {
		h.spi.PrepareUserClaims(res.Subject, res.Claims)
		collected = claims.NewCollector(h.spi).CollectJSON(res.Subject, res.Claims, res.ClaimsLocales)
	}

	issued, err := h.api.UserInfoIssue(ctx, &models.UserInfoIssueRequest{
		Token:  res.Token,
		Claims: collected,
	})
	if err != nil {
		return apiFailure("/auth/userinfo/issue", err)
	}

	switch issued.Action {
	case models.UserInfoIssueActionInternalServerError:
		return httputil.WWWAuthenticate(http.StatusInternalServerError, issued.ResponseContent), nil
	case models.UserInfoIssueActionBadRequest:
		return httputil.WWWAuthenticate(http.StatusBadRequest, issued.ResponseContent), nil
	case models.UserInfoIssueActionUnauthorized:
		return httputil.WWWAuthenticate(http.StatusUnauthorized, issued.ResponseContent), nil
	case models.UserInfoIssueActionForbidden:
		return httputil.WWWAuthenticate(http.StatusForbidden, issued.ResponseContent), nil
	case models.UserInfoIssueActionJSON:
		return httputil.OKJSON(issued.ResponseContent), nil
	case models.UserInfoIssueActionJWT:
		return httputil.OKJWT(issued.ResponseContent), nil
	default:
		return unknownAction("/auth/userinfo/issue", string(issued.Action))
	}
}
