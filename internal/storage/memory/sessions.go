package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ka-tch/webmail/internal/storage"
)

type sessionEntry struct {
	username  string
	expiresAt time.Time
}

// Sessions maps opaque tokens to authenticated usernames. Entries expire
// lazily on lookup.
type Sessions struct {
	mu      sync.Mutex
	entries map[string]sessionEntry
	ttl     time.Duration
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		entries: make(map[string]sessionEntry),
		ttl:     ttl,
	}
}

// Create mints a new token bound to username.
func (s *Sessions) Create(ctx context.Context, username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.New().String()
	s.entries[token] = sessionEntry{
		username:  username,
		expiresAt: time.Now().Add(s.ttl),
	}

	return token, nil
}

// Get resolves a token to its username.
func (s *Sessions) Get(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return "", storage.ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, token)
		return "", storage.ErrSessionNotFound
	}

	return entry.username, nil
}

// Delete removes a session. Deleting an unknown token is not an error.
func (s *Sessions) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, token)

	return nil
}
