package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRevocationStore shares revocations between instances. Entries carry a
// TTL matching the token's remaining lifetime.
type RedisRevocationStore struct {
	client redis.UniversalClient
	now    func() time.Time
	prefix string
}

// NewRedisRevocationStore creates a store namespacing keys under prefix
func NewRedisRevocationStore(client redis.UniversalClient, prefix string, now func() time.Time) *RedisRevocationStore {
	if now == nil {
		now = time.Now
	}
	return &RedisRevocationStore{client: client, prefix: prefix, now: now}
}

func (s *RedisRevocationStore) key(token string) string {
	return s.prefix + ":revoked:" + tokenKey(token)
}

// Revoke stores the token until expiresAt. Already-expired tokens need no entry.
func (s *RedisRevocationStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, s.key(token), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revocation: %w", err)
	}
	return nil
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revocation: %w", err)
	}
	return n > 0, nil
}

var _ RevocationStore = (*RedisRevocationStore)(nil)
