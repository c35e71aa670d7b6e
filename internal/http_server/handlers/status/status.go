package status

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/ka-tch/webmail/internal/auth"
)

type Response struct {
	Status string `json:"status"`
	User   string `json:"user,omitempty"`
}

// New reports whether the caller holds a valid session. The unauthenticated
// case is a 401 with a status body, not the error envelope.
func New(
	log *slog.Logger,
	authService *auth.Auth,
	cookieName string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(cookieName)
		if err == nil {
			if username, err := authService.Identify(r.Context(), cookie.Value); err == nil {
				render.JSON(w, r, Response{
					Status: "authenticated",
					User:   username,
				})

				return
			}
		}

		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, Response{Status: "unauthenticated"})
	}
}
