// Package redis implements the session store on top of Redis.
// A session is a single key mapping an opaque token to the customer ID,
// expired server-side via the key's TTL. Resolving a token slides the
// expiry forward so active customers stay signed in.
package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// DefaultSessionTTL is the idle expiry applied when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

// SessionStore issues and resolves bearer tokens backed by Redis keys.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a session store. A non-positive ttl falls back
// to DefaultSessionTTL.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create issues a new session token for the customer.
func (s *SessionStore) Create(ctx context.Context, customerID kernel.UUID) (string, error) {
	if err := customerID.Validate(); err != nil {
		return "", err
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}

	err = s.client.Set(ctx, sessionKeyPrefix+token, customerID.String(), s.ttl).Err()
	if err != nil {
		return "", err
	}

	return token, nil
}

// Resolve returns the customer a token belongs to and slides its expiry.
// Unknown and expired tokens are indistinguishable and both resolve to
// an unauthorized error.
func (s *SessionStore) Resolve(ctx context.Context, token string) (kernel.UUID, error) {
	if token == "" {
		return kernel.UUID{}, errs.NewUnauthorizedError("token")
	}

	value, err := s.client.GetEx(ctx, sessionKeyPrefix+token, s.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return kernel.UUID{}, errs.NewUnauthorizedError("token")
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	customerID, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthorizedErrorWithCause("token", err)
	}

	return customerID, nil
}

// Revoke invalidates a token. Revoking an unknown token is a no-op.
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

func newToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
