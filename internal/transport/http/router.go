// Package httptransport is the demo server's thin HTTP layer: it extracts the
// raw request material each SDK handler needs, lets the handler drive the
// remote decision API, and writes the response descriptor the handler hands
// back. This wiring is illustrative; the SDK itself is framework-agnostic.
package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"authlink/internal/platform/middleware"
	"authlink/internal/users"
	"authlink/pkg/api"
	"authlink/pkg/handler"
	"authlink/pkg/httputil"
	"authlink/pkg/validator"
)

// Handler bundles the SDK endpoint handlers behind the demo routes. Handlers
// whose SPI is stateless are built once; flows whose SPI carries per-request
// state (the decision form, userinfo claim loading, complete calls) build
// theirs per request.
type Handler struct {
	api    api.Client
	users  users.Store
	logger *slog.Logger

	authorization *handler.AuthorizationRequestHandler
	token         *handler.TokenRequestHandler
	introspection *handler.IntrospectionRequestHandler
	revocation    *handler.RevocationRequestHandler
	configuration *handler.ConfigurationRequestHandler
	jwks          *handler.JWKSRequestHandler
	deviceAuth    *handler.DeviceAuthorizationHandler
	par           *handler.PushedAuthReqHandler
	validator     *validator.AccessTokenValidator
}

// NewHandler wires the SDK handlers to the remote API client and the demo
// user store.
func NewHandler(client api.Client, store users.Store, logger *slog.Logger) *Handler {
	return &Handler{
		api:    client,
		users:  store,
		logger: logger,

		authorization: handler.NewAuthorizationRequestHandler(client, authorizeSpi{}, logger),
		token:         handler.NewTokenRequestHandler(client, tokenSpi{store: store}, logger),
		introspection: handler.NewIntrospectionRequestHandler(client, logger),
		revocation:    handler.NewRevocationRequestHandler(client, logger),
		configuration: handler.NewConfigurationRequestHandler(client, logger),
		jwks:          handler.NewJWKSRequestHandler(client, logger),
		deviceAuth:    handler.NewDeviceAuthorizationHandler(client, logger),
		par:           handler.NewPushedAuthReqHandler(client, logger),
		validator:     validator.New(client, logger),
	}
}

// NewRouter builds the demo server's router: the OAuth/OIDC endpoints, a
// token-protected sample resource, Prometheus metrics and a health probe.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))

	r.Get("/authorize", h.handleAuthorize)
	r.Post("/authorize", h.handleAuthorize)
	r.Post("/authorize/decision", h.handleAuthorizeDecision)
	r.Post("/token", h.handleToken)
	r.Get("/userinfo", h.handleUserInfo)
	r.Post("/userinfo", h.handleUserInfo)
	r.Post("/introspect", h.handleIntrospection)
	r.Post("/revoke", h.handleRevocation)
	r.Get("/.well-known/openid-configuration", h.handleConfiguration)
	r.Get("/jwks", h.handleJWKS)
	r.Post("/device/authorization", h.handleDeviceAuthorization)
	r.Post("/device/verification", h.handleDeviceVerification)
	r.Post("/device/complete", h.handleDeviceComplete)
	r.Post("/backchannel/authentication", h.handleBackchannelAuthentication)
	r.Post("/par", h.handlePushedAuthReq)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireToken(h.validator, []string{"profile"}, h.logger))
		r.Get("/api/me", h.handleMe)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}

// write serves the response descriptor a handler produced. Handler errors are
// logged here; the descriptor is always usable even when the error is non-nil.
func (h *Handler) write(w http.ResponseWriter, r *http.Request, res *httputil.Response, err error) {
	if err != nil {
		h.logger.ErrorContext(r.Context(), "endpoint failed",
			"path", r.URL.Path,
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
	}
	res.WriteTo(w)
}

// handleMe is the sample token-protected resource: it echoes what the
// introspection said about the caller.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"subject": middleware.GetSubject(r.Context()),
		"scopes":  middleware.GetScopes(r.Context()),
	})
}
