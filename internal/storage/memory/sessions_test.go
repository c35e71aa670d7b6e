package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ka-tch/webmail/internal/storage"
)

func TestSessions_RoundTrip(t *testing.T) {
	t.Parallel()

	s := NewSessions(time.Hour)
	ctx := context.Background()

	token, err := s.Create(ctx, "kate")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := s.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "kate", username)

	require.NoError(t, s.Delete(ctx, token))

	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSessions_DeleteUnknownToken(t *testing.T) {
	t.Parallel()

	s := NewSessions(time.Hour)

	assert.NoError(t, s.Delete(context.Background(), "no-such-token"))
}

func TestSessions_Expiry(t *testing.T) {
	t.Parallel()

	s := NewSessions(-time.Second)
	ctx := context.Background()

	token, err := s.Create(ctx, "kate")
	require.NoError(t, err)

	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSessions_IndependentTokensPerLogin(t *testing.T) {
	t.Parallel()

	s := NewSessions(time.Hour)
	ctx := context.Background()

	first, err := s.Create(ctx, "kate")
	require.NoError(t, err)
	second, err := s.Create(ctx, "kate")
	require.NoError(t, err)

	require.NotEqual(t, first, second)

	// deleting one session leaves the other valid
	require.NoError(t, s.Delete(ctx, first))

	username, err := s.Get(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "kate", username)
}
