package repository

import (
	"context"
	"testing"

	"github.com/benx421/easydinar/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepository_StoreAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewIdempotencyRepository(database)

	ctx := context.Background()
	first := &models.IdempotencyKey{
		Key:            "7:key-1",
		RequestPath:    "/api/v1/deposits",
		ResponseStatus: 200,
		ResponseBody:   `{"balance":"10"}`,
	}
	require.NoError(t, repo.Store(ctx, first))

	second := *first
	second.ResponseBody = `{"balance":"20"}`
	require.NoError(t, repo.Store(ctx, &second), "duplicate store is ignored")

	got, err := repo.Get(ctx, "7:key-1", "/api/v1/deposits")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ResponseBody, got.ResponseBody, "first response wins")

	missing, err := repo.Get(ctx, "7:key-1", "/api/v1/withdrawals")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
