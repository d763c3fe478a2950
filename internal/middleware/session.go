package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dailydiet/dailydiet-go/internal/service"
)

type contextKey string

const userIDKey contextKey = "userID"

// SessionCookie is the cookie that carries the opaque session credential.
const SessionCookie = "sessionId"

// SessionAuth returns middleware that resolves the session credential
// attached to the request and rejects requests it cannot bind to a user.
func SessionAuth(sessions *service.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessions.Resolve(r.Context(), TokenFromRequest(r))
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "missing or unknown session credential")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromRequest extracts the session credential from the sessionId
// cookie, falling back to an Authorization Bearer header. It does not
// validate the credential.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	if token, found := strings.CutPrefix(authHeader, "Bearer "); found {
		return token
	}
	return ""
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
