package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/benvon/google-auth/internal/database"
	"github.com/benvon/google-auth/internal/request"
	"github.com/benvon/google-auth/internal/session"
	"go.uber.org/zap"
)

// Session creates middleware that resolves the current user from the
// session cookie: read cookie, verify the signed token, load the user, and
// attach it to the request context. Failure bodies match the API contract:
// missing cookie and invalid token are 401s, a verified token whose user
// row has since been removed is a 404.
func Session(transport *session.Transport, codec *session.Codec, users database.UserRepositoryInterface, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := transport.Read(r)
			if !ok {
				respondError(w, http.StatusUnauthorized, "No token provided")
				return
			}

			userID, err := codec.Verify(token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := r.Context()
			user, err := users.GetByID(ctx, userID)
			if err != nil {
				if errors.Is(err, database.ErrUserNotFound) {
					respondError(w, http.StatusNotFound, "User not found")
					return
				}
				logger.Error("session_user_lookup_failed",
					zap.String("user_id", userID.String()),
					zap.Error(err),
				)
				respondError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(request.WithUser(ctx, user)))
		})
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		// Headers are already written; nothing sensible left to do.
		_ = err
	}
}
