package handler

import (
	"context"
	"log/slog"

	"authlink/pkg/claims"
	"authlink/pkg/handler/spi"
	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

// AuthorizationDecisionHandler completes an interactive authorization flow
// once the host application has obtained the end-user's grant or deny
// decision from the page rendered by the SPI.
type AuthorizationDecisionHandler struct {
	api    AuthorizationDecisionAPI
	spi    spi.AuthorizationDecisionSpi
	logger *slog.Logger
}

// NewAuthorizationDecisionHandler builds the handler. A nil logger falls
// back to slog.Default().
func NewAuthorizationDecisionHandler(api AuthorizationDecisionAPI, s spi.AuthorizationDecisionSpi, logger *slog.Logger) *AuthorizationDecisionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthorizationDecisionHandler{api: api, spi: s, logger: logger}
}

// Handle finishes the flow identified by ticket. claimNames and claimLocales
// come from the first-phase authorization response the host kept while the
// end-user was deciding.
func (h *AuthorizationDecisionHandler) Handle(ctx context.Context, ticket string, claimNames, claimLocales []string) (*httputil.Response, error) {
	// The end-user said no.
	if !h.spi.ClientAuthorized() {
		return authorizationFail(ctx, h.api, h.logger, ticket, models.FailReasonDenied)
	}

	// The end-user said yes but was never authenticated.
	subject := h.spi.UserSubject()
	if subject == "" {
		return authorizationFail(ctx, h.api, h.logger, ticket, models.FailReasonNotAuthenticated)
	}

	collected := claims.NewCollector(h.spi).CollectJSON(subject, claimNames, claimLocales)

	return authorizationIssue(ctx, h.api, h.logger, &models.AuthorizationIssueRequest{
		Ticket:     ticket,
		Subject:    subject,
		AuthTime:   h.spi.UserAuthenticatedAt(),
		Acr:        h.spi.Acr(),
		Sub:        h.spi.Sub(),
		Claims:     collected,
		Properties: h.spi.Properties(),
		Scopes:     h.spi.Scopes(),
	})
}
