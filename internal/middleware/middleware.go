package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/AlenaMolokova/masterdata/internal/constants"
	"github.com/AlenaMolokova/masterdata/internal/session"
	"github.com/AlenaMolokova/masterdata/internal/utils"
	"go.uber.org/zap"
)

type UserKey struct{}

// TokenParser is satisfied by *session.Manager.
type TokenParser interface {
	Parse(ctx context.Context, token string) (*session.Claims, error)
}

// AuthMiddleware is the single authorization gate for operator routes. The
// session token is read from the Authorization header or the session cookie.
func AuthMiddleware(sessions TokenParser, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := tokenFromRequest(r)
			if !ok {
				log.Debug("missing session token", zap.String("path", r.URL.Path))
				utils.WriteJSONError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}

			claims, err := sessions.Parse(r.Context(), tokenString)
			if err != nil {
				if errors.Is(err, session.ErrInvalidToken) || errors.Is(err, session.ErrRevoked) {
					log.Info("rejected session token", zap.Error(err))
					utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
					return
				}
				log.Error("failed to verify session token", zap.Error(err))
				utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) (string, bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", false
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		return token, token != ""
	}
	if cookie, err := r.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return "", false
}

func GetClaims(r *http.Request) (*session.Claims, bool) {
	claims, ok := r.Context().Value(UserKey{}).(*session.Claims)
	return claims, ok && claims != nil
}

func GetUserID(r *http.Request) (int64, bool) {
	claims, ok := GetClaims(r)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// WithClaims stores claims in the request context the way AuthMiddleware does.
func WithClaims(r *http.Request, claims *session.Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), UserKey{}, claims))
}
