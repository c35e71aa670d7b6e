package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ka-tch/webmail/internal/storage"
)

// Sessions is a Redis-backed session store. Sessions survive a backend
// restart the way the original's server-side session storage did; mailbox
// and account state intentionally do not.
type Sessions struct {
	client *redis.Client
	ttl    time.Duration
}

func New(ctx context.Context, addr, pass string, db int, ttl time.Duration) (*Sessions, error) {
	const op = "storage.redis.New"

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     pass,
		DB:           db,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Sessions{client: client, ttl: ttl}, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

// Create mints a new token bound to username.
func (s *Sessions) Create(ctx context.Context, username string) (string, error) {
	const op = "storage.redis.Create"

	token := uuid.New().String()

	if err := s.client.Set(ctx, sessionKey(token), username, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

// Get resolves a token to its username.
func (s *Sessions) Get(ctx context.Context, token string) (string, error) {
	const op = "storage.redis.Get"

	username, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", storage.ErrSessionNotFound
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return username, nil
}

// Delete removes a session. Deleting an unknown token is not an error.
func (s *Sessions) Delete(ctx context.Context, token string) error {
	const op = "storage.redis.Delete"

	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Sessions) Close() error {
	return s.client.Close()
}
