package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sutt/travel-gateway/internal/httputil"
	"github.com/sutt/travel-gateway/internal/logging"
	"github.com/sutt/travel-gateway/internal/user"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const userContextKey ContextKey = "user"

// UserFinder is the part of the credential store the session resolver needs.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// Middleware resolves bearer tokens to authenticated users for protected
// routes.
type Middleware struct {
	tokenService TokenService
	users        UserFinder
}

func NewMiddleware(tokenService TokenService, users UserFinder) *Middleware {
	return &Middleware{tokenService: tokenService, users: users}
}

// RequireAuth validates the bearer token and loads the user it asserts.
// The failure kind (expired, invalid, unknown user) is logged and reported
// with a distinct detail string; all of them are terminal 401s.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.GetLoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.RespondErrorWithCode(w, "invalid authorization header format", httputil.CodeInvalidAuthHeader, http.StatusUnauthorized)
			return
		}
		token := parts[1]

		claims, err := m.tokenService.VerifyToken(token)
		if err != nil {
			if errors.Is(err, ErrExpiredToken) {
				logger.Warn("auth failed: token expired")
				httputil.RespondErrorWithCode(w, "token expired", httputil.CodeTokenExpired, http.StatusUnauthorized)
				return
			}
			logger.Warn("auth failed: invalid token")
			httputil.RespondErrorWithCode(w, "invalid token", httputil.CodeInvalidToken, http.StatusUnauthorized)
			return
		}

		// The account may have been deleted after the token was issued.
		resolved, err := m.users.GetByEmail(r.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				logger.Warn("auth failed: user not found", "subject", claims.Subject)
				httputil.RespondErrorWithCode(w, "user not found", httputil.CodeUserNotFound, http.StatusUnauthorized)
				return
			}
			logger.Error("auth failed: user lookup error", "error", err.Error())
			httputil.RespondErrorWithCode(w, "authentication failed", httputil.CodeInternalError, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), resolved)))
	})
}

// ContextWithUser returns a context carrying the resolved user.
func ContextWithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// UserFromContext extracts the resolved user from the request context.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userContextKey).(*user.User)
	return u, ok
}
