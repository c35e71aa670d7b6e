package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ka-tch/webmail/internal/auth"
	"github.com/ka-tch/webmail/internal/storage/memory"
)

func newAuth(t *testing.T) *auth.Auth {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return auth.New(log, memory.NewUsers(), memory.NewSessions(time.Hour), "ka-tch.com")
}

func registerParams(username string) auth.RegisterParams {
	return auth.RegisterParams{
		Username:        username,
		Password:        "Abc123!@",
		ConfirmPassword: "Abc123!@",
		FirstName:       "K",
		LastName:        "T",
		DOB:             "2000-01-01",
		Email:           "ignored@example.com",
	}
}

func TestRegister_DerivesEmail(t *testing.T) {
	t.Parallel()

	a := newAuth(t)

	acc, err := a.Register(context.Background(), registerParams("kate"))
	require.NoError(t, err)

	assert.Equal(t, "kate", acc.Username)
	assert.Equal(t, "kate@ka-tch.com", acc.Email)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	a := newAuth(t)
	ctx := context.Background()

	_, err := a.Register(ctx, registerParams("kate"))
	require.NoError(t, err)

	_, err = a.Register(ctx, registerParams("kate"))
	assert.ErrorIs(t, err, auth.ErrUserExists)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	t.Parallel()

	a := newAuth(t)

	p := registerParams("kate")
	p.ConfirmPassword = "Different1!"

	_, err := a.Register(context.Background(), p)
	assert.ErrorIs(t, err, auth.ErrPasswordMismatch)
}

func TestRegister_PasswordPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "all four classes", password: "Abc123!@"},
		{name: "missing uppercase", password: "abc123!@", wantErr: auth.ErrWeakPassword},
		{name: "missing lowercase", password: "ABC123!@", wantErr: auth.ErrWeakPassword},
		{name: "missing digit", password: "Abcdef!@", wantErr: auth.ErrWeakPassword},
		{name: "missing symbol", password: "Abc12345", wantErr: auth.ErrWeakPassword},
		{name: "underscore is not a symbol", password: "Abc_1234", wantErr: auth.ErrWeakPassword},
		{name: "whitespace is not a symbol", password: "Abc 1234", wantErr: auth.ErrWeakPassword},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newAuth(t)

			p := registerParams("kate")
			p.Password = tt.password
			p.ConfirmPassword = tt.password

			_, err := a.Register(context.Background(), p)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogin_UnknownUserAndWrongPassword(t *testing.T) {
	t.Parallel()

	a := newAuth(t)
	ctx := context.Background()

	_, err := a.Login(ctx, "nobody", "Abc123!@")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = a.Register(ctx, registerParams("kate"))
	require.NoError(t, err)

	_, err = a.Login(ctx, "kate", "Wrong123!")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginLogoutStatusFlow(t *testing.T) {
	t.Parallel()

	a := newAuth(t)
	ctx := context.Background()

	_, err := a.Register(ctx, registerParams("kate"))
	require.NoError(t, err)

	token, err := a.Login(ctx, "kate", "Abc123!@")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := a.Identify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "kate", username)

	require.NoError(t, a.Logout(ctx, token))

	_, err = a.Identify(ctx, token)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	// logout with no session is still fine
	assert.NoError(t, a.Logout(ctx, token))
	assert.NoError(t, a.Logout(ctx, ""))
}

func TestProfile_DefaultsForMissingUser(t *testing.T) {
	t.Parallel()

	a := newAuth(t)

	p := a.Profile(context.Background(), "ghost")

	assert.Equal(t, "ghost", p.Username)
	assert.Equal(t, "ghost@ka-tch.com", p.Email)
	assert.Empty(t, p.FirstName)
	assert.Empty(t, p.LastName)
	assert.Empty(t, p.DOB)
}

func TestProfile_ReturnsStoredFields(t *testing.T) {
	t.Parallel()

	a := newAuth(t)
	ctx := context.Background()

	_, err := a.Register(ctx, registerParams("kate"))
	require.NoError(t, err)

	p := a.Profile(ctx, "kate")

	assert.Equal(t, "kate@ka-tch.com", p.Email)
	assert.Equal(t, "K", p.FirstName)
	assert.Equal(t, "T", p.LastName)
	assert.Equal(t, "2000-01-01", p.DOB)
}
