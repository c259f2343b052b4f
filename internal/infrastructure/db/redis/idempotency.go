package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idempotencyTTL = 24 * time.Hour
	// claimTTL bounds how long a crashed submission can hold a key.
	claimTTL = 30 * time.Second
	inFlight = "in-flight"
)

// IdempotencyStore maps a submission Idempotency-Key to the article it created.
// Key format: idem:submit:<key>. While the first request is storing its
// article the value is the in-flight marker.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. ttl <= 0 falls back to idempotencyTTL.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = idempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Claim sets the in-flight marker unless the key already exists.
func (s *IdempotencyStore) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(key), inFlight, claimTTL).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency claim: %w", err)
	}
	return ok, nil
}

// Lookup returns the article ID recorded for key. An in-flight key is found
// with an empty ID.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	id, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	}
	if id == inFlight {
		return "", true, nil
	}
	return id, true, nil
}

// Complete replaces the in-flight marker with articleID for the full TTL.
func (s *IdempotencyStore) Complete(ctx context.Context, key, articleID string) error {
	if err := s.client.Set(ctx, s.key(key), articleID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release deletes the key so a retry can claim it again.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(k string) string {
	return "idem:submit:" + k
}
