package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ka-tch/webmail/internal/auth"
	sl "github.com/ka-tch/webmail/internal/lib/logger"
)

type Response struct {
	Message string `json:"message"`
}

// New clears the caller's session. Logout is idempotent: it succeeds even
// when no session cookie was sent.
func New(
	log *slog.Logger,
	authService *auth.Auth,
	cookieName string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.logout.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if cookie, err := r.Cookie(cookieName); err == nil {
			if err := authService.Logout(r.Context(), cookie.Value); err != nil {
				log.Error("failed to clear session", sl.Err(err))
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})

		render.JSON(w, r, Response{Message: "Logout successful"})
	}
}
