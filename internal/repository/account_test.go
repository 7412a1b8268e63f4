package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benx421/easydinar/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_FindByAccountNumber(t *testing.T) {
	database := setupTestDB(t)
	users := NewUserRepository(database)
	repo := NewAccountRepository(database)

	owner := seedUser(t, users, "01234567")
	seedAccount(t, repo, owner.ID, "000001101512000000", "150.250")

	tests := []struct {
		name          string
		accountNumber string
		wantBalance   string
		wantErr       error
	}{
		{
			name:          "existing account",
			accountNumber: "000001101512000000",
			wantBalance:   "150.25",
		},
		{
			name:          "non-existent account",
			accountNumber: "999999999999999999",
			wantErr:       models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := repo.FindByAccountNumber(context.Background(), tt.accountNumber)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, account, "expected nil account")
				return
			}

			require.NoError(t, err, "unexpected error")
			assert.Equal(t, tt.accountNumber, account.AccountNumber, "account number mismatch")
			assert.True(t, decimal.RequireFromString(tt.wantBalance).Equal(account.Balance), "balance mismatch: %s", account.Balance)
			assert.Equal(t, owner.CIN, account.OwnerCIN, "owner CIN mismatch")
		})
	}
}

func TestAccountRepository_Create_DuplicateNumber(t *testing.T) {
	database := setupTestDB(t)
	users := NewUserRepository(database)
	repo := NewAccountRepository(database)

	owner := seedUser(t, users, "01234567")
	existing := seedAccount(t, repo, owner.ID, "000001101512000000", "0")

	dup := *existing
	dup.ID = uuid.New()
	err := repo.Create(context.Background(), &dup)
	assert.ErrorIs(t, err, models.ErrDuplicateAccountNumber)
}

func TestAccountRepository_ListByOwnerCIN(t *testing.T) {
	database := setupTestDB(t)
	users := NewUserRepository(database)
	repo := NewAccountRepository(database)

	owner := seedUser(t, users, "01234567")
	other := seedUser(t, users, "11234567")
	seedAccount(t, repo, owner.ID, "000001101512000000", "10")
	seedAccount(t, repo, owner.ID, "000001101512000001", "20")
	seedAccount(t, repo, other.ID, "000002101512000000", "30")

	accounts, err := repo.ListByOwnerCIN(context.Background(), owner.CIN)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	for _, acc := range accounts {
		assert.Equal(t, owner.ID, acc.UserID)
	}

	accounts, err = repo.ListByOwnerCIN(context.Background(), "00000000")
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountRepository_UpdateKind(t *testing.T) {
	database := setupTestDB(t)
	users := NewUserRepository(database)
	repo := NewAccountRepository(database)

	owner := seedUser(t, users, "01234567")
	seedAccount(t, repo, owner.ID, "000001101512000000", "10")

	require.NoError(t, repo.UpdateKind(context.Background(), "000001101512000000", models.AccountKindChecking))

	account, err := repo.FindByAccountNumber(context.Background(), "000001101512000000")
	require.NoError(t, err)
	assert.Equal(t, models.AccountKindChecking, account.Kind)

	err = repo.UpdateKind(context.Background(), "missing", models.AccountKindChecking)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPostgresStore_WithinTx_RollsBackOnError(t *testing.T) {
	database := setupTestDB(t)
	store := NewPostgresStore(database)

	owner := seedUser(t, store.Users(), "01234567")
	seedAccount(t, store.Accounts(), owner.ID, "000001101512000000", "100")

	boom := errors.New("boom")
	err := store.WithinTx(context.Background(), func(ctx context.Context, repos Repositories) error {
		if err := repos.Accounts.UpdateBalance(ctx, "000001101512000000", decimal.NewFromInt(1), time.Now()); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	account, err := store.Accounts().FindByAccountNumber(context.Background(), "000001101512000000")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(account.Balance), "balance should be unchanged")
}

func TestPostgresStore_WithinTx_SerializesAccount(t *testing.T) {
	database := setupTestDB(t)
	store := NewPostgresStore(database)

	owner := seedUser(t, store.Users(), "01234567")
	seedAccount(t, store.Accounts(), owner.ID, "000001101512000000", "0")

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.WithinTx(context.Background(), func(ctx context.Context, repos Repositories) error {
				acc, err := repos.Accounts.FindByAccountNumberForUpdate(ctx, "000001101512000000")
				if err != nil {
					return err
				}
				return repos.Accounts.UpdateBalance(ctx, acc.AccountNumber, acc.Balance.Add(decimal.NewFromInt(1)), time.Now())
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	account, err := store.Accounts().FindByAccountNumber(context.Background(), "000001101512000000")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(workers).Equal(account.Balance), "got %s", account.Balance)
}
