package middleware

import (
	"context"
	"log"
	"net/http"

	"takatrack-client/internal/models"
	"takatrack-client/pkg/utils"
)

type contextKey string

const SessionContextKey contextKey = "session"

// SessionSource reports the active session, if any.
type SessionSource interface {
	Current() (models.Session, bool)
}

// RequireSession rejects requests while nobody is logged in and adds the
// active session to the request context.
func RequireSession(sessions SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := sessions.Current()
			if !ok {
				log.Printf("🔐 No active session for %s %s", r.Method, r.URL.Path)
				utils.RespondError(w, http.StatusUnauthorized, "Not logged in")
				return
			}

			ctx := context.WithValue(r.Context(), SessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionFromContext extracts the session from request context
func GetSessionFromContext(r *http.Request) (models.Session, bool) {
	sess, ok := r.Context().Value(SessionContextKey).(models.Session)
	return sess, ok
}
