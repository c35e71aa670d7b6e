package send

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	resp "github.com/ka-tch/webmail/internal/lib/api/response"
	sl "github.com/ka-tch/webmail/internal/lib/logger"
	"github.com/ka-tch/webmail/internal/http_server/middleware/session"
	"github.com/ka-tch/webmail/internal/mail"
)

type Request struct {
	To      string `json:"to" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

type Response struct {
	Message string `json:"message"`
}

func New(
	log *slog.Logger,
	validate *validator.Validate,
	mailService *mail.Service,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.send.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		username, ok := session.Username(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, resp.Error("Unauthorized"))

			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("Failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Invalid request data"))

			return
		}

		if err := validate.Struct(req); err != nil {
			validateErr := err.(validator.ValidationErrors)

			log.Error("Invalid request", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.ValidationError(validateErr))

			return
		}

		if err := mailService.Send(r.Context(), username, req.To, req.Subject, req.Body); err != nil {
			if errors.Is(err, mail.ErrInvalidRecipient) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, resp.Error("Invalid recipient email address"))

				return
			}

			log.Error("failed to send email", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Internal error"))

			return
		}

		render.JSON(w, r, Response{Message: "Email sent successfully"})
	}
}
