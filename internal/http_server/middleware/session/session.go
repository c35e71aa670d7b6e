package session

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	resp "github.com/ka-tch/webmail/internal/lib/api/response"
)

type contextKey struct{}

var usernameKey contextKey

// Identifier resolves a session token to the authenticated username.
type Identifier interface {
	Identify(ctx context.Context, token string) (string, error)
}

// Username returns the authenticated username injected by RequireAuth.
func Username(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}

// RequireAuth rejects requests without a valid session cookie before any
// handler runs, and injects the username into the request context.
func RequireAuth(log *slog.Logger, cookieName string, auth Identifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.session.RequireAuth"

			cookie, err := r.Cookie(cookieName)
			if err != nil {
				unauthorized(w, r)

				return
			}

			username, err := auth.Identify(r.Context(), cookie.Value)
			if err != nil {
				log.Info("invalid session",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)

				unauthorized(w, r)

				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, resp.Error("Unauthorized"))
}
