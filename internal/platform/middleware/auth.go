package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"authlink/pkg/validator"
)

type contextKeySubject struct{}
type contextKeyScopes struct{}

// Context keys for the token introspection result.
var (
	ContextKeySubject = contextKeySubject{}
	ContextKeyScopes  = contextKeyScopes{}
)

// GetSubject retrieves the access token's subject from the context.
func GetSubject(ctx context.Context) string {
	subject, ok := ctx.Value(ContextKeySubject).(string)
	if !ok {
		return ""
	}
	return subject
}

// GetScopes retrieves the access token's scopes from the context.
func GetScopes(ctx context.Context) []string {
	scopes, ok := ctx.Value(ContextKeyScopes).([]string)
	if !ok {
		return nil
	}
	return scopes
}

// RequireToken protects a resource endpoint with the access-token validator.
// Requests without a valid token covering requiredScopes receive the RFC 6750
// challenge the validator built; valid requests proceed with subject and
// scopes in the context.
func RequireToken(v *validator.AccessTokenValidator, requiredScopes []string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result := v.Validate(r.Context(), validator.Request{
				Token:          bearerToken(r),
				RequiredScopes: requiredScopes,
			})
			if !result.Valid {
				if result.Err != nil {
					logger.ErrorContext(r.Context(), "token validation failed",
						"error", result.Err,
						"request_id", GetRequestID(r.Context()),
					)
				}
				result.ErrorResponse.WriteTo(w)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, ContextKeySubject, result.Introspection.Subject)
			ctx = context.WithValue(ctx, ContextKeyScopes, result.Introspection.Scopes)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token of an RFC 6750 Bearer authorization header,
// or "" when the header is absent or uses another scheme.
func bearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
