//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/handlers"
	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/repository/memory"
	"github.com/benx421/easydinar/internal/service"
)

const (
	testPassword  = "S3cure!pass"
	validOTPCode  = "123456"
	adminCIN      = "09999999"
	adminClientID = "admin0001"
)

const testDirectory = `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "geometry": {"type": "Point", "coordinates": [10.2716, 36.8412]},
   "properties": {"amenity": "bank", "name": "Agence Lac 2", "addr:street": "Rue du Lac Huron", "addr:city": "Tunis"}},
  {"type": "Feature", "geometry": {"type": "Point", "coordinates": [10.3233, 36.8528]},
   "properties": {"amenity": "atm", "name": "DAB Carthage", "addr:city": "Carthage"}}
]}`

// TestServer wraps the HTTP test server and the in-memory store for integration tests.
type TestServer struct {
	Server *httptest.Server
	Store  *memory.Store
	Mail   *capturingMailer
}

// capturingMailer records password reset messages instead of sending them
type capturingMailer struct {
	mu   sync.Mutex
	sent []service.PasswordResetMessage
}

func (m *capturingMailer) SendPasswordReset(_ context.Context, msg service.PasswordResetMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *capturingMailer) last(t *testing.T) service.PasswordResetMessage {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent, "no password reset email was sent")
	return m.sent[len(m.sent)-1]
}

// stubOTP approves validOTPCode for any phone
type stubOTP struct{}

func (stubOTP) StartVerification(context.Context, string) (string, error) {
	return "VE0001", nil
}

func (stubOTP) CheckCode(_ context.Context, _, code string) (bool, error) {
	return code == validOTPCode, nil
}

// fixedRates quotes from a static table
type fixedRates map[string]decimal.Decimal

func (f fixedRates) Rate(_ context.Context, base, target string) (decimal.Decimal, error) {
	rate, ok := f[base+"/"+target]
	if !ok {
		return decimal.Zero, models.ErrUnsupportedCurrency
	}
	return rate, nil
}

var testRates = fixedRates{
	"TND/EUR": decimal.RequireFromString("0.295"),
	"EUR/TND": decimal.RequireFromString("3.389831"),
}

// SetupTest wires the full application against in-memory storage.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	mail := &capturingMailer{}

	verifier := auth.NewBcryptVerifier(bcrypt.MinCost)
	codec := auth.NewJWTCodec([]byte("integration-test-secret"), time.Now)
	revocations := auth.NewMemoryRevocationStore(time.Now)

	sessions := service.NewSessionService(store.Users(), verifier, codec, revocations, mail, logger,
		service.SessionOptions{
			PasswordResetURL: "http://localhost:5173/reset-password",
			SessionTTL:       time.Hour,
			ResetTokenTTL:    15 * time.Minute,
			MailTimeout:      time.Second,
		})

	directory := service.NewDirectoryService(store.Locations(), logger)
	_, err := directory.ImportGeoJSON(context.Background(), strings.NewReader(testDirectory))
	require.NoError(t, err, "failed to seed directory")

	handler := handlers.NewHandler(handlers.Services{
		Ledger:       service.NewLedgerService(store, logger, 8),
		Transactions: service.NewTransactionService(store, logger),
		Sessions:     sessions,
		TwoFactor:    service.NewTwoFactorService(store.Users(), stubOTP{}, logger, 5*time.Second),
		Users:        service.NewUserService(store.Users(), verifier, logger),
		Exchange:     service.NewExchangeService(testRates, logger, time.Second),
		Directory:    directory,
		Health:       store,
	}, logger)

	router, err := handlers.NewRouter(handler, sessions, store.Idempotency(), logger)
	require.NoError(t, err)

	hash, err := verifier.Hash(testPassword)
	require.NoError(t, err)
	err = store.Users().Create(context.Background(), &models.User{
		ClientIdentifier: adminClientID,
		FirstName:        "Bank",
		LastName:         "Admin",
		CIN:              adminCIN,
		PhoneNumber:      "99999999",
		Email:            "admin@easydinar.tn",
		PasswordHash:     hash,
		Role:             models.RoleAdmin,
		TwoFactor:        models.TwoFactorOff,
	})
	require.NoError(t, err, "failed to seed admin")

	ts := &TestServer{
		Server: httptest.NewServer(router),
		Store:  store,
		Mail:   mail,
	}
	t.Cleanup(ts.Server.Close)
	return ts
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// Do sends a request with an optional JSON body, bearer token and extra headers.
func (ts *TestServer) Do(t *testing.T, method, path, token string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL(path), reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// RegisterUser creates a user and returns its public view.
func (ts *TestServer) RegisterUser(t *testing.T, cin, phone, email string) api.User {
	t.Helper()

	resp := ts.Do(t, http.MethodPost, "/api/v1/users", "", map[string]any{
		"first_name":   "Amal",
		"last_name":    "Ben Salah",
		"cin":          cin,
		"phone_number": phone,
		"address":      "Tunis",
		"email":        email,
		"password":     testPassword,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[api.User](t, resp)
}

// Login returns a session token for the given client identifier.
func (ts *TestServer) Login(t *testing.T, clientIdentifier, password string) string {
	t.Helper()

	resp := ts.Do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"client_identifier": clientIdentifier,
		"password":          password,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[api.LoginResponse](t, resp).AccessToken
}

// OpenAccount opens an account for cin and returns it.
func (ts *TestServer) OpenAccount(t *testing.T, token, cin string, balance float64) api.Account {
	t.Helper()

	resp := ts.Do(t, http.MethodPost, "/api/v1/accounts", token, map[string]any{
		"cin":             cin,
		"kind":            "checking",
		"initial_balance": balance,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[api.Account](t, resp)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}
