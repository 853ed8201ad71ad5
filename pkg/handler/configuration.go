package handler

import (
	"context"
	"log/slog"

	"authlink/pkg/httputil"
)

// ConfigurationRequestHandler serves the OpenID Connect discovery document
// (/.well-known/openid-configuration) built by the remote service.
type ConfigurationRequestHandler struct {
	api    DiscoveryAPI
	logger *slog.Logger
}

// NewConfigurationRequestHandler builds the handler. A nil logger falls back
// to slog.Default().
func NewConfigurationRequestHandler(api DiscoveryAPI, logger *slog.Logger) *ConfigurationRequestHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConfigurationRequestHandler{api: api, logger: logger}
}

// Handle fetches and serves the discovery document.
func (h *ConfigurationRequestHandler) Handle(ctx context.Context, pretty bool) (*httputil.Response, error) {
	doc, err := h.api.ServiceConfiguration(ctx, pretty)
	if err != nil {
		return apiFailure("/service/configuration", err)
	}
	return httputil.OKJSON(doc), nil
}

// JWKSRequestHandler serves the service's public JWK Set document. A service
// without a registered key set yields an empty 204.
type JWKSRequestHandler struct {
	api    DiscoveryAPI
	logger *slog.Logger
}

// NewJWKSRequestHandler builds the handler. A nil logger falls back to
// slog.Default().
func NewJWKSRequestHandler(api DiscoveryAPI, logger *slog.Logger) *JWKSRequestHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &JWKSRequestHandler{api: api, logger: logger}
}

// Handle fetches and serves the JWK Set. Private key material is never
// included.
func (h *JWKSRequestHandler) Handle(ctx context.Context, pretty bool) (*httputil.Response, error) {
	doc, err := h.api.ServiceJWKS(ctx, pretty, false)
	if err != nil {
		return apiFailure("/service/jwks/get", err)
	}
	if doc == "" {
		return httputil.NoContent(), nil
	}
	return httputil.OKJSON(doc), nil
}
