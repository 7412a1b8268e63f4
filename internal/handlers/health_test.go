package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/benx421/easydinar/internal/api"
)

func TestGetHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		env := newTestEnv(t)
		env.health.On("PingContext", mock.Anything).Return(nil)

		rec := env.do(http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, api.HealthStatusHealthy, decodeJSON[api.Health](t, rec).Status)
	})

	t.Run("storage unreachable", func(t *testing.T) {
		env := newTestEnv(t)
		env.health.On("PingContext", mock.Anything).Return(errors.New("connection refused"))

		rec := env.do(http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, api.HealthStatusUnhealthy, decodeJSON[api.Health](t, rec).Status)
	})
}

func TestRouter_UnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/v1/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
