// Package session tracks login sessions server-side in Redis, keyed by
// opaque random tokens. Logging out deletes the key, which invalidates the
// token immediately; expiry is delegated to the Redis TTL.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound means the token does not map to a live session.
var ErrNotFound = errors.New("session not found or expired")

// CookieName is the cookie carrying the session token.
const CookieName = "session"

// Sessions is the process-wide store, set by Connect.
var Sessions *Store

// Store maps session tokens to user IDs with a TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// Connect initializes the global session store from a Redis URL.
func Connect(url string, ttl time.Duration) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("Invalid Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	Sessions = NewWithClient(client, ttl)
	log.Println("Session store connected.")
}

// NewWithClient builds a store around an existing client (used by tests).
func NewWithClient(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

// Create mints a fresh opaque token bound to userID.
func (s *Store) Create(ctx context.Context, userID uint) (string, error) {
	token := newToken()
	value := strconv.FormatUint(uint64(userID), 10)
	if err := s.client.Set(ctx, sessionKey(token), value, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Lookup resolves a token to the user ID it was bound to.
func (s *Store) Lookup(ctx context.Context, token string) (uint, error) {
	value, err := s.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return uint(id), nil
}

// Delete invalidates a token. Deleting an unknown token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Close closes the underlying Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

func sessionKey(token string) string {
	return "session:" + token
}

func newToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
