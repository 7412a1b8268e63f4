package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/repository/mocks"
)

func TestIdempotency_GETRequestsBypassed(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	middleware := Idempotency(repo, testLogger())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil), 1)
	req.Header.Set("Idempotency-Key", "test-key")
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.True(t, handlerCalled, "handler should be called for GET requests")
	repo.AssertNotCalled(t, "Get")
	repo.AssertNotCalled(t, "Store")
}

func TestIdempotency_NonIdempotentPathBypassed(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	middleware := Idempotency(repo, testLogger())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/2fa/start", nil), 1)
	req.Header.Set("Idempotency-Key", "test-key")
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.True(t, handlerCalled, "handler should be called for non-idempotent paths")
	repo.AssertNotCalled(t, "Get")
	repo.AssertNotCalled(t, "Store")
}

func TestIdempotency_MissingKeyPassesThrough(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	middleware := Idempotency(repo, testLogger())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/deposits", nil), 1)
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.True(t, handlerCalled, "handler should be called without idempotency key")
	repo.AssertNotCalled(t, "Get")
	repo.AssertNotCalled(t, "Store")
}

func TestIdempotency_AnonymousRequestBypassed(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	middleware := Idempotency(repo, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/deposits", nil)
	req.Header.Set("Idempotency-Key", "test-key")
	rec := httptest.NewRecorder()

	middleware(testHandler(http.StatusOK, `{}`)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertNotCalled(t, "Get")
}

func TestIdempotency_FirstRequestCached(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "7:unique-key-123", "/api/v1/deposits").Return(nil, nil)
	repo.On("Store", mock.Anything, mock.MatchedBy(func(k *models.IdempotencyKey) bool {
		return k.Key == "7:unique-key-123" &&
			k.RequestPath == "/api/v1/deposits" &&
			k.ResponseStatus == http.StatusOK &&
			k.ResponseBody == `{"status":"success"}`
	})).Return(nil)

	middleware := Idempotency(repo, testLogger())
	handler := testHandler(http.StatusOK, `{"status":"success"}`)

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/deposits", nil), 7)
	req.Header.Set("Idempotency-Key", "unique-key-123")
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"status":"success"}`, rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Idempotent-Replayed"), "first request should not have replay header")
}

func TestIdempotency_SecondRequestReturnsCached(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)

	cached := &models.IdempotencyKey{
		Key:            "7:duplicate-key",
		RequestPath:    "/api/v1/withdrawals",
		ResponseStatus: 200,
		ResponseBody:   `{"call":1}`,
	}
	repo.On("Get", mock.Anything, "7:duplicate-key", "/api/v1/withdrawals").Return(cached, nil)

	middleware := Idempotency(repo, testLogger())

	callCount := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		w.WriteHeader(http.StatusOK)
	})

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/withdrawals", nil), 7)
	req.Header.Set("Idempotency-Key", "duplicate-key")
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.Equal(t, 0, callCount, "handler should not be called when cached")
	assert.Equal(t, "true", rec.Header().Get("X-Idempotent-Replayed"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"call":1}`, rec.Body.String())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdempotency_KeysAreScopedPerUser(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, mock.Anything, "/api/v1/deposits").Return(nil, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(nil)

	middleware := Idempotency(repo, testLogger())
	handler := testHandler(http.StatusOK, `{}`)

	for _, userID := range []int64{1, 2} {
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/deposits", nil), userID)
		req.Header.Set("Idempotency-Key", "shared-key")
		middleware(handler).ServeHTTP(httptest.NewRecorder(), req)
	}

	repo.AssertCalled(t, "Get", mock.Anything, "1:shared-key", "/api/v1/deposits")
	repo.AssertCalled(t, "Get", mock.Anything, "2:shared-key", "/api/v1/deposits")
}

func TestIdempotency_SameKeyDifferentPathsAreSeparate(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "1:shared-key", mock.Anything).Return(nil, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(nil)

	middleware := Idempotency(repo, testLogger())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`)) //nolint:errcheck // test helper
	})

	req1 := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/deposits", nil), 1)
	req1.Header.Set("Idempotency-Key", "shared-key")
	rec1 := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec1, req1)

	req2 := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/withdrawals/", nil), 1)
	req2.Header.Set("Idempotency-Key", "shared-key")
	rec2 := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec2, req2)

	assert.Contains(t, rec1.Body.String(), "deposits")
	assert.Contains(t, rec2.Body.String(), "withdrawals")

	repo.AssertCalled(t, "Get", mock.Anything, "1:shared-key", "/api/v1/deposits")
	repo.AssertCalled(t, "Get", mock.Anything, "1:shared-key", "/api/v1/withdrawals")
}

func TestIdempotency_ErrorResponsesNotCached(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusPaymentRequired, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			repo := mocks.NewMockIdempotencyRepository(t)
			repo.On("Get", mock.Anything, "1:error-key", "/api/v1/withdrawals").Return(nil, nil)

			middleware := Idempotency(repo, testLogger())

			req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/withdrawals", nil), 1)
			req.Header.Set("Idempotency-Key", "error-key")
			rec := httptest.NewRecorder()

			middleware(testHandler(status, `{"error":"x"}`)).ServeHTTP(rec, req)

			assert.Equal(t, status, rec.Code)
			repo.AssertNotCalled(t, "Store")
		})
	}
}

func TestIdempotency_RepoGetErrorFailsOpen(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "1:test-key", "/api/v1/accounts").Return(nil, errors.New("database connection failed"))

	middleware := Idempotency(repo, testLogger())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusCreated)
	})

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/accounts", nil), 1)
	req.Header.Set("Idempotency-Key", "test-key")
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.True(t, handlerCalled, "handler should be called on repo.Get error (fail open)")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestIdempotency_RepoStoreErrorDoesNotAffectResponse(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Get", mock.Anything, "1:test-key", "/api/v1/accounts").Return(nil, nil)
	repo.On("Store", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(errors.New("failed to store"))

	middleware := Idempotency(repo, testLogger())
	handler := testHandler(http.StatusCreated, `{"status":"success"}`)

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/accounts", nil), 1)
	req.Header.Set("Idempotency-Key", "test-key")
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"status":"success"}`, rec.Body.String())
}
