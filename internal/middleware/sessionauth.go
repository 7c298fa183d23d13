// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/atinyakov/GrowthMindset/internal/models"
)

type ctxKey string

const sessionKey ctxKey = "session"

// TokenParser turns a bearer token into the session it carries.
type TokenParser interface {
	Parse(token string) (models.Session, error)
}

// SessionAuth requires an "Authorization: Bearer <token>" header. A valid
// token's session is stored in the request context for downstream handlers.
func SessionAuth(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "please log in", http.StatusUnauthorized)
				return
			}
			sess, err := tokens.Parse(token)
			if err != nil {
				http.Error(w, "please log in", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess models.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext extracts the session stored by SessionAuth.
// Returns nil if the request was not authenticated.
func SessionFromContext(ctx context.Context) *models.Session {
	if sess, ok := ctx.Value(sessionKey).(models.Session); ok {
		return &sess
	}
	return nil
}
