// Package middleware provides HTTP middleware components for the EasyDinar API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/service"
)

const bearerPrefix = "bearer "

// ErrorWriter renders a service error as an HTTP response
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// BearerToken extracts the token from an "Authorization: Bearer" header
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// Authenticate resolves the bearer token of operations that declare
// bearerAuth to a principal, and stores both in the request context.
// Public operations pass through. Requests to a secured operation without
// a valid session never reach next.
func Authenticate(verifier service.TokenVerifier, writeErr ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Context().Value(api.BearerAuthScopes) == nil {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := BearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="easydinar"`)
				api.WriteError(w, http.StatusUnauthorized, service.ErrCodeInvalidToken, "missing bearer token")
				return
			}

			principal, err := verifier.Verify(r.Context(), token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="easydinar", error="invalid_token"`)
				writeErr(w, r, err)
				return
			}

			ctx := auth.WithToken(auth.WithPrincipal(r.Context(), principal), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
