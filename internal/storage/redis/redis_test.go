package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ka-tch/webmail/internal/storage"
)

func newTestStore(t *testing.T) *Sessions {
	t.Helper()

	mr := miniredis.RunT(t)

	s, err := New(context.Background(), mr.Addr(), "", 0, time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestSessions_RoundTrip(t *testing.T) {
	s := newTestStore(t)
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

func TestSessions_UnknownToken(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSessions_DeleteUnknownToken(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.Delete(context.Background(), "no-such-token"))
}
