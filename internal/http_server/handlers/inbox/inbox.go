package inbox

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/ka-tch/webmail/internal/mail"
)

func New(
	log *slog.Logger,
	mailService *mail.Service,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, mailService.Inbox(r.Context()))
	}
}
