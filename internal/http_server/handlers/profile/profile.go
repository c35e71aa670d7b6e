package profile

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/ka-tch/webmail/internal/auth"
	resp "github.com/ka-tch/webmail/internal/lib/api/response"
	"github.com/ka-tch/webmail/internal/http_server/middleware/session"
)

func New(
	log *slog.Logger,
	authService *auth.Auth,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := session.Username(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, resp.Error("Unauthorized"))

			return
		}

		render.JSON(w, r, authService.Profile(r.Context(), username))
	}
}
