package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode"

	sl "github.com/ka-tch/webmail/internal/lib/logger"
	"github.com/ka-tch/webmail/internal/models"
	"github.com/ka-tch/webmail/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("user already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrWeakPassword       = errors.New("password does not meet the policy")
)

type UserStore interface {
	Save(ctx context.Context, acc models.Account) error
	Get(ctx context.Context, username string) (models.Account, error)
}

type SessionStore interface {
	Create(ctx context.Context, username string) (token string, err error)
	Get(ctx context.Context, token string) (username string, err error)
	Delete(ctx context.Context, token string) error
}

type Auth struct {
	log         *slog.Logger
	users       UserStore
	sessions    SessionStore
	emailDomain string
}

func New(log *slog.Logger, users UserStore, sessions SessionStore, emailDomain string) *Auth {
	return &Auth{
		log:         log,
		users:       users,
		sessions:    sessions,
		emailDomain: emailDomain,
	}
}

type RegisterParams struct {
	Username        string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	DOB             string
	Email           string
}

// Register creates a new account. The email field is always overwritten with
// the derived <username>@<domain> address regardless of the supplied value.
func (a *Auth) Register(ctx context.Context, p RegisterParams) (models.Account, error) {
	const op = "auth.Register"

	log := a.log.With(slog.String("op", op))

	if p.Password != p.ConfirmPassword {
		return models.Account{}, ErrPasswordMismatch
	}

	if !passwordMeetsPolicy(p.Password) {
		return models.Account{}, ErrWeakPassword
	}

	acc := models.Account{
		Username:  p.Username,
		Password:  p.Password,
		Email:     a.deriveEmail(p.Username),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		DOB:       p.DOB,
	}

	if err := a.users.Save(ctx, acc); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("user already exists", slog.String("username", p.Username))

			return models.Account{}, ErrUserExists
		}

		log.Error("failed to save user", sl.Err(err))

		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.String("username", acc.Username))

	return acc, nil
}

// Login checks the credentials and establishes a session, returning its token.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	const op = "auth.Login"

	log := a.log.With(slog.String("op", op))

	acc, err := a.users.Get(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found")

			return "", ErrInvalidCredentials
		}

		log.Error("failed to get user", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	// Plaintext comparison preserved from the original demo. Not production
	// acceptable; replace with a salted-hash comparison behind this method.
	if acc.Password != password {
		log.Info("invalid credentials")

		return "", ErrInvalidCredentials
	}

	token, err := a.sessions.Create(ctx, username)
	if err != nil {
		log.Error("failed to create session", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in", slog.String("username", username))

	return token, nil
}

// Logout clears the session. It succeeds even when no session existed.
func (a *Auth) Logout(ctx context.Context, token string) error {
	const op = "auth.Logout"

	if token == "" {
		return nil
	}

	if err := a.sessions.Delete(ctx, token); err != nil {
		a.log.Error("failed to delete session", slog.String("op", op), sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Identify resolves a session token to its username.
func (a *Auth) Identify(ctx context.Context, token string) (string, error) {
	const op = "auth.Identify"

	username, err := a.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return username, nil
}

// Profile is the account projection returned to an authenticated user.
type Profile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
}

// Profile returns the account projection for username. Missing fields default
// to empty strings and a missing email falls back to the derived address.
func (a *Auth) Profile(ctx context.Context, username string) Profile {
	acc, err := a.users.Get(ctx, username)
	if err != nil {
		acc = models.Account{}
	}

	email := acc.Email
	if email == "" {
		email = a.deriveEmail(username)
	}

	return Profile{
		Username:  username,
		Email:     email,
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
		DOB:       acc.DOB,
	}
}

func (a *Auth) deriveEmail(username string) string {
	return username + "@" + a.emailDomain
}

// passwordMeetsPolicy requires at least one lowercase letter, one uppercase
// letter, one digit and one symbol. Underscore and whitespace do not count
// as symbols.
func passwordMeetsPolicy(password string) bool {
	var lower, upper, digit, symbol bool

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case r != '_' && !unicode.IsSpace(r) && !unicode.IsLetter(r):
			symbol = true
		}
	}

	return lower && upper && digit && symbol
}
