package middleware

import (
	"context"
	"net/http"
	"strings"

	"patrika/internal/auth"
	"patrika/internal/httpjson"
	"patrika/internal/models"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// identityKey is the context key for the authenticated identity.
const identityKey contextKey = "identity"

// RequireAuth validates the bearer token from the Authorization header
// and stores the decoded identity in the request context. Requests with
// a missing, malformed, expired, or badly signed token get a 401.
func RequireAuth(tokens *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				httpjson.Message(w, http.StatusUnauthorized, "No token provided")
				return
			}

			ident, err := tokens.Verify(token)
			if err != nil {
				httpjson.Message(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin returns 403 if the authenticated identity is not an admin.
// Must be applied after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident := IdentityFromCtx(r.Context())
		if ident == nil || ident.Role != models.RoleAdmin {
			httpjson.Message(w, http.StatusForbidden, "Access denied. Admin privileges required.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// IdentityFromCtx extracts the authenticated identity from the request
// context. Returns nil if the request did not pass RequireAuth.
func IdentityFromCtx(ctx context.Context) *auth.Identity {
	ident, _ := ctx.Value(identityKey).(*auth.Identity)
	return ident
}

// bearerToken pulls the token out of an "Authorization: Bearer <token>"
// header. Returns "" when the header is absent or not a bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
