package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/benx421/easydinar/internal/config"
	"github.com/benx421/easydinar/internal/db"
	"github.com/benx421/easydinar/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the configured Postgres database and applies
// migrations. Tests are skipped when no database is reachable.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}

	require.NoError(t, database.Migrate(context.Background()), "failed to migrate")
	truncateTables(t, database)

	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(),
		"TRUNCATE TABLE transactions, accounts, idempotency_keys, users, branches_and_atms RESTART IDENTITY CASCADE")
	require.NoError(t, err, "failed to truncate tables")
}

func seedUser(t *testing.T, repo UserRepository, cin string) *models.User {
	t.Helper()

	user := &models.User{
		ClientIdentifier:  cin[1:] + cin[:1],
		FirstName:         "Amira",
		LastName:          "Ben Salah",
		CIN:               cin,
		PhoneNumber:       "9" + cin[:1] + cin[2:],
		Email:             fmt.Sprintf("%s@example.tn", cin),
		PasswordHash:      "hash",
		Role:              models.RoleUser,
		TwoFactor:         models.TwoFactorOff,
		PasswordChangedAt: time.Date(2024, 10, 15, 9, 30, 0, 123456000, time.UTC),
	}
	require.NoError(t, repo.Create(context.Background(), user), "failed to seed user")
	return user
}

func seedAccount(t *testing.T, repo AccountRepository, userID int64, number, balance string) *models.Account {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	account := &models.Account{
		ID:            uuid.New(),
		AccountNumber: number,
		UserID:        userID,
		Kind:          models.AccountKindSavings,
		Balance:       decimal.RequireFromString(balance),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, repo.Create(context.Background(), account), "failed to seed account")
	return account
}
