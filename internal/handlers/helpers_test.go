package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/repository/memory"
	"github.com/benx421/easydinar/internal/service/mocks"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	testUser  = auth.Principal{CIN: "12345678", Role: models.RoleUser, UserID: 1}
	testAdmin = auth.Principal{CIN: "87654321", Role: models.RoleAdmin, UserID: 2}
	testNow   = time.Date(2024, 10, 15, 9, 30, 0, 0, time.UTC)
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnv struct {
	ledger       *mocks.MockLedger
	transactions *mocks.MockTransactionLister
	sessions     *mocks.MockSessionManager
	twoFactor    *mocks.MockTwoFactorEnroller
	users        *mocks.MockUserDirectory
	exchange     *mocks.MockExchangeRates
	directory    *mocks.MockLocationDirectory
	health       *mocks.MockHealthChecker
	router       http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		ledger:       mocks.NewMockLedger(t),
		transactions: mocks.NewMockTransactionLister(t),
		sessions:     mocks.NewMockSessionManager(t),
		twoFactor:    mocks.NewMockTwoFactorEnroller(t),
		users:        mocks.NewMockUserDirectory(t),
		exchange:     mocks.NewMockExchangeRates(t),
		directory:    mocks.NewMockLocationDirectory(t),
		health:       mocks.NewMockHealthChecker(t),
	}

	// Verify is called by the auth middleware on every protected route
	env.sessions.On("Verify", mock.Anything, userToken).Return(testUser, nil).Maybe()
	env.sessions.On("Verify", mock.Anything, adminToken).Return(testAdmin, nil).Maybe()

	handler := NewHandler(Services{
		Ledger:       env.ledger,
		Transactions: env.transactions,
		Sessions:     env.sessions,
		TwoFactor:    env.twoFactor,
		Users:        env.users,
		Exchange:     env.exchange,
		Directory:    env.directory,
		Health:       env.health,
	}, testLogger())

	router, err := NewRouter(handler, env.sessions, memory.NewStore().Idempotency(), testLogger())
	require.NoError(t, err)
	env.router = router
	return env
}

func (e *testEnv) do(method, target, token, body string) *httptest.ResponseRecorder {
	return e.doWithHeaders(method, target, token, body, nil)
}

func (e *testEnv) doWithHeaders(method, target, token, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
