package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"github.com/ka-tch/webmail/internal/auth"
	"github.com/ka-tch/webmail/internal/http_server/handlers/inbox"
	"github.com/ka-tch/webmail/internal/http_server/handlers/inboxcount"
	"github.com/ka-tch/webmail/internal/http_server/handlers/login"
	"github.com/ka-tch/webmail/internal/http_server/handlers/logout"
	"github.com/ka-tch/webmail/internal/http_server/handlers/mailstatus"
	"github.com/ka-tch/webmail/internal/http_server/handlers/profile"
	"github.com/ka-tch/webmail/internal/http_server/handlers/register"
	"github.com/ka-tch/webmail/internal/http_server/handlers/remove"
	"github.com/ka-tch/webmail/internal/http_server/handlers/send"
	"github.com/ka-tch/webmail/internal/http_server/handlers/status"
	"github.com/ka-tch/webmail/internal/http_server/handlers/toggle"
	"github.com/ka-tch/webmail/internal/http_server/middleware/session"
	"github.com/ka-tch/webmail/internal/mail"
	rateLimit "github.com/ka-tch/webmail/internal/middleware/ratelimit"
)

// New assembles the full route table. The browser client runs on arbitrary
// origins, so CORS echoes any origin and allows credentials.
func New(
	log *slog.Logger,
	validate *validator.Validate,
	authService *auth.Auth,
	mailService *mail.Service,
	cookieName string,
	sessionTTL time.Duration,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return true
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	requireAuth := session.RequireAuth(log, cookieName, authService)

	r.Route("/auth", func(r chi.Router) {
		r.With(rateLimit.Register()).Post("/register",
			register.New(log, validate, authService),
		)
		r.With(rateLimit.Login()).Post("/login",
			login.New(log, validate, authService, cookieName, sessionTTL),
		)
		r.Post("/logout",
			logout.New(log, authService, cookieName),
		)
		r.Get("/status",
			status.New(log, authService, cookieName),
		)
		r.With(requireAuth).Get("/profile",
			profile.New(log, authService),
		)
	})

	r.Route("/mail", func(r chi.Router) {
		r.Get("/status", mailstatus.New())

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.With(rateLimit.Send()).Post("/send",
				send.New(log, validate, mailService),
			)
			r.Get("/inbox", inbox.New(log, mailService))
			r.Get("/inbox/count", inboxcount.New(log, mailService))
			r.Delete("/inbox/{id}", remove.New(log, mailService))
			r.Put("/inbox/{id}/read", toggle.NewRead(log, mailService))
			r.Put("/inbox/{id}/star", toggle.NewStar(log, mailService))
		})
	})

	return r
}
