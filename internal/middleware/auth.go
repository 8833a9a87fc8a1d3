package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/learnpath/backend/internal/services"
	"go.uber.org/zap"
)

// Authenticator validates an access token and returns the user id it belongs to.
// Rejected tokens are reported with errors matching services.ErrUnauthorized.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// AuthMiddleware accepts requests carrying a valid bearer token and stores the user id in the context
func AuthMiddleware(authenticator Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w, "authentication required")
				return
			}

			userID, err := authenticator.Authenticate(r.Context(), token)
			if errors.Is(err, services.ErrUnauthorized) {
				logger.Debug("authentication failed",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Error(err),
				)
				unauthorized(w, "invalid or expired token")
				return
			}
			if err != nil {
				logger.Error("failed to authenticate request",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Error(err),
				)
				writeError(w, http.StatusInternalServerError, "failed to authenticate")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID retrieves the authenticated user ID from context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func unauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, message)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
