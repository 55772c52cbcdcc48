package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type ownerKey struct{}

// SessionCookieName is the cookie the browser client carries the token in;
// API callers may use a bearer Authorization header instead.
const SessionCookieName = "session_token"

// Authenticate resolves the caller's identity before anything else runs.
// No resolvable identity means 401, uniformly, ahead of input validation.
func Authenticate(store *SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				unauthorized(w)
				return
			}

			sess, err := store.Get(r.Context(), token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ownerKey{}, sess.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnerFromContext returns the authenticated owner id. ok is false only if
// the middleware never ran, which handlers must treat as unauthenticated.
func OwnerFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ownerKey{}).(string)
	return id, ok && id != ""
}

// WithOwner attaches an owner id directly. Intended for tests and
// in-process callers that bypass the HTTP middleware.
func WithOwner(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, userID)
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
