package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cakeshare/cakeshare-api/internal/httputil"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const (
	UserIDContextKey ContextKey = "user_id"
)

// AdminChecker decides whether a verified identity is the administrator.
type AdminChecker interface {
	RequireAdmin(ctx context.Context, userID int64) error
}

// Middleware handles authentication and admin gating for protected routes
type Middleware struct {
	tokens TokenService
	access AdminChecker
}

func NewMiddleware(tokens TokenService, access AdminChecker) *Middleware {
	return &Middleware{tokens: tokens, access: access}
}

// RequireAuth validates the bearer token and puts the user id in the request
// context. A missing header, a malformed header and an invalid token all
// collapse into 401 with deliberately generic messages.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.RespondErrorWithCode(w, "no authorization token provided", httputil.CodeMissingAuth, http.StatusUnauthorized)
			return
		}

		// Strip the Bearer prefix here; the verifier only sees the token.
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			httputil.RespondErrorWithCode(w, "invalid authorization header format", httputil.CodeInvalidAuthHeader, http.StatusUnauthorized)
			return
		}

		userID, err := m.tokens.VerifyToken(token)
		if err != nil {
			if errors.Is(err, ErrExpiredToken) {
				httputil.RespondErrorWithCode(w, "token has expired", httputil.CodeTokenExpired, http.StatusUnauthorized)
				return
			}
			httputil.RespondErrorWithCode(w, "invalid or expired token", httputil.CodeInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route to the administrator. Must be layered after
// RequireAuth.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok {
			httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
			return
		}

		if err := m.access.RequireAdmin(r.Context(), userID); err != nil {
			if errors.Is(err, ErrUnauthorized) {
				httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
				return
			}
			if errors.Is(err, ErrForbidden) {
				httputil.RespondErrorWithCode(w, "access denied, admin privileges required", httputil.CodeForbidden, http.StatusForbidden)
				return
			}
			httputil.RespondErrorWithCode(w, "failed to check permissions", httputil.CodeInternalError, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserIDFromContext extracts the user ID from the request context
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(int64)
	return userID, ok
}
