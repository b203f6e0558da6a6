package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/dancereel/pkg/slogx"
)

// TokenAuthenticator resolves an opaque bearer token to a subject id. An
// unknown token is not an error: it returns "" and a nil error.
type TokenAuthenticator interface {
	AuthenticateToken(ctx context.Context, token string) (string, error)
}

// TokenAuthenticatorFunc adapts a function to TokenAuthenticator.
type TokenAuthenticatorFunc func(ctx context.Context, token string) (string, error)

func (f TokenAuthenticatorFunc) AuthenticateToken(ctx context.Context, token string) (string, error) {
	return f(ctx, token)
}

// BearerToken extracts the token from the Authorization header. Both the
// bare form ("Authorization: <token>") and the RFC 6750 form
// ("Authorization: Bearer <token>") are accepted.
func BearerToken(r *http.Request) string {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(authz) > len("Bearer ") && strings.EqualFold(authz[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(authz[len("Bearer "):])
	}
	return authz
}

// Authenticate resolves the request's bearer token, if any, and stores the
// subject in the request context. It never rejects a request; pair it with
// RequireUser on protected routes.
func Authenticate(a TokenAuthenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			userID, err := a.AuthenticateToken(ctx, token)
			if err != nil {
				slogx.FromContext(ctx).Error("token lookup failed", "err", err)
				WriteError(w, http.StatusInternalServerError, "server_error", "Failed to authenticate request")
				return
			}
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx = contextWithAuth(ctx, userID, token)
			ctx = slogx.WithUser(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests that Authenticate could not attach a user to.
func RequireUser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if UserIDFromContext(r.Context()) == "" {
				WriteUnauthenticated(w, "A valid token is required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WriteUnauthenticated writes a 401 with an RFC 6750 challenge header.
func WriteUnauthenticated(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "unauthenticated", desc)
}
