package memory

import (
	"context"
	"time"

	"github.com/benx421/easydinar/internal/models"
)

type idempotencyRepository struct {
	s *Store
}

func (r *idempotencyRepository) Get(_ context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k, ok := r.s.idempotency[requestPath+"\x00"+key]
	if !ok {
		return nil, nil
	}
	c := *k
	return &c, nil
}

func (r *idempotencyRepository) Store(_ context.Context, idemKey *models.IdempotencyKey) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id := idemKey.RequestPath + "\x00" + idemKey.Key
	if _, ok := r.s.idempotency[id]; ok {
		return nil
	}

	stored := *idemKey
	stored.CreatedAt = time.Now().UTC()
	r.s.idempotency[id] = &stored
	return nil
}
