package register

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/ka-tch/webmail/internal/auth"
	resp "github.com/ka-tch/webmail/internal/lib/api/response"
	sl "github.com/ka-tch/webmail/internal/lib/logger"
)

type Request struct {
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	DOB             string `json:"dob" validate:"required"`
	Email           string `json:"email" validate:"required"`
}

type Response struct {
	Message string `json:"message"`
	User    string `json:"user"`
	Email   string `json:"email"`
}

func New(
	log *slog.Logger,
	validate *validator.Validate,
	authService *auth.Auth,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.register.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

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

		acc, err := authService.Register(r.Context(), auth.RegisterParams{
			Username:        req.Username,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			DOB:             req.DOB,
			Email:           req.Email,
		})
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrPasswordMismatch):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, resp.Error("Passwords do not match."))
			case errors.Is(err, auth.ErrWeakPassword):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, resp.Error("Password must contain at least one uppercase letter, one lowercase letter, one number, and one special symbol."))
			case errors.Is(err, auth.ErrUserExists):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, resp.Error("User already exists"))
			default:
				log.Error("failed to register user", sl.Err(err))

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, resp.Error("Internal error"))
			}

			return
		}

		log.Info("user registered", slog.String("username", acc.Username))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Message: "Registration successful",
			User:    acc.Username,
			Email:   acc.Email,
		})
	}
}
