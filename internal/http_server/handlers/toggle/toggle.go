package toggle

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	resp "github.com/ka-tch/webmail/internal/lib/api/response"
	"github.com/ka-tch/webmail/internal/mail"
	"github.com/ka-tch/webmail/internal/storage"
)

type ReadResponse struct {
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

type StarResponse struct {
	Message string `json:"message"`
	Starred bool   `json:"starred"`
}

// NewRead flips the read flag on a message.
func NewRead(
	log *slog.Logger,
	mailService *mail.Service,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := messageID(w, r)
		if !ok {
			return
		}

		read, err := mailService.ToggleRead(r.Context(), id)
		if err != nil {
			notFound(w, r, err)

			return
		}

		render.JSON(w, r, ReadResponse{
			Message: "Read status toggled",
			Read:    read,
		})
	}
}

// NewStar flips the starred flag on a message.
func NewStar(
	log *slog.Logger,
	mailService *mail.Service,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := messageID(w, r)
		if !ok {
			return
		}

		starred, err := mailService.ToggleStar(r.Context(), id)
		if err != nil {
			notFound(w, r, err)

			return
		}

		render.JSON(w, r, StarResponse{
			Message: "Starred status toggled",
			Starred: starred,
		})
	}
}

func messageID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, resp.Error("Email not found"))

		return 0, false
	}

	return id, true
}

func notFound(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrMessageNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, resp.Error("Email not found"))

		return
	}

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, resp.Error("Internal error"))
}
