package remove

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	resp "github.com/ka-tch/webmail/internal/lib/api/response"
	sl "github.com/ka-tch/webmail/internal/lib/logger"
	"github.com/ka-tch/webmail/internal/mail"
	"github.com/ka-tch/webmail/internal/storage"
)

type Response struct {
	Message string `json:"message"`
}

func New(
	log *slog.Logger,
	mailService *mail.Service,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.remove.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Error("Email not found"))

			return
		}

		if err := mailService.Delete(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrMessageNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, resp.Error("Email not found"))

				return
			}

			log.Error("failed to delete email", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Internal error"))

			return
		}

		render.JSON(w, r, Response{Message: "Email deleted successfully"})
	}
}
