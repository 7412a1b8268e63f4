package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testClock struct {
	t time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2024, 10, 15, 9, 30, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func seedUser(t *testing.T, store *memory.Store, cin string, role models.Role) (*models.User, auth.Principal) {
	t.Helper()

	user := &models.User{
		ClientIdentifier: cin[1:] + cin[:1],
		FirstName:        "Amira",
		LastName:         "Ben Salah",
		CIN:              cin,
		PhoneNumber:      "9" + cin[:1] + cin[2:],
		Email:            cin + "@example.tn",
		PasswordHash:     "unused",
		Role:             role,
		TwoFactor:        models.TwoFactorOff,
	}
	require.NoError(t, store.Users().Create(context.Background(), user))

	return user, auth.Principal{UserID: user.ID, CIN: user.CIN, Role: user.Role}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireServiceError(t *testing.T, err error, kind ErrorKind, code string) *ServiceError {
	t.Helper()

	require.Error(t, err)
	svcErr, ok := err.(*ServiceError)
	require.True(t, ok, "expected *ServiceError, got %T: %v", err, err)
	require.Equal(t, kind, svcErr.Kind, "kind mismatch: %v", err)
	require.Equal(t, code, svcErr.Code, "code mismatch: %v", err)
	return svcErr
}
