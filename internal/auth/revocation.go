package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"
)

// RevocationStore remembers revoked tokens until they expire on their own
type RevocationStore interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// tokenKey identifies a token without keeping the bearer credential itself
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// MemoryRevocationStore keeps revocations in process memory
type MemoryRevocationStore struct {
	entries map[string]time.Time
	now     func() time.Time
	mu      sync.RWMutex
}

// NewMemoryRevocationStore creates an empty store. A nil now uses time.Now.
func NewMemoryRevocationStore(now func() time.Time) *MemoryRevocationStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryRevocationStore{
		entries: make(map[string]time.Time),
		now:     now,
	}
}

// Revoke records token as revoked until expiresAt. Revoking twice is a no-op.
func (s *MemoryRevocationStore) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[tokenKey(token)] = expiresAt
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[tokenKey(token)]
	return ok, nil
}

// Sweep drops entries whose token has expired and returns how many were removed
func (s *MemoryRevocationStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, expiresAt := range s.entries {
		if !expiresAt.After(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked revocations
func (s *MemoryRevocationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Run sweeps every interval until ctx is cancelled
func (s *MemoryRevocationStore) Run(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Debug("pruned expired revocations", "count", n)
			}
		}
	}
}

var _ RevocationStore = (*MemoryRevocationStore)(nil)
