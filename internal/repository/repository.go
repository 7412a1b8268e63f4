// Package repository provides data access layer implementations for the ledger.
package repository

import (
	"context"
	"time"

	"github.com/benx421/easydinar/internal/models"
	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error)
	// FindByAccountNumberForUpdate locks the account until the enclosing unit of work ends
	FindByAccountNumberForUpdate(ctx context.Context, accountNumber string) (*models.Account, error)
	ListByOwnerCIN(ctx context.Context, cin string) ([]*models.Account, error)
	UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal, updatedAt time.Time) error
	UpdateKind(ctx context.Context, accountNumber string, kind models.AccountKind) error
}

// TransactionRepository defines the interface for transaction history access
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	// Query returns matching transactions newest first
	Query(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByClientIdentifier(ctx context.Context, clientIdentifier string) (*models.User, error)
	FindByCIN(ctx context.Context, cin string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]*models.User, error)
	UpdateContact(ctx context.Context, id int64, update models.ContactUpdate) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string, changedAt time.Time) error
	// UpdateTwoFactor applies transition, returning ErrStateConflict when its guard no longer holds
	UpdateTwoFactor(ctx context.Context, id int64, transition models.TwoFactorTransition) error
}

// IdempotencyRepository defines the interface for idempotency storage
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
}

// LocationRepository defines the interface for the branch and ATM directory
type LocationRepository interface {
	// Create inserts location. It reports false when the same place is already listed.
	Create(ctx context.Context, location *models.Location) (bool, error)
	// List returns matching locations ordered by id
	List(ctx context.Context, filter models.LocationFilter) ([]*models.Location, error)
}

// Repositories bundles the repositories bound to one unit of work
type Repositories struct {
	Accounts     AccountRepository
	Transactions TransactionRepository
}

// Store is the durable storage the services run against
type Store interface {
	Accounts() AccountRepository
	Transactions() TransactionRepository
	Users() UserRepository
	Idempotency() IdempotencyRepository
	Locations() LocationRepository
	// WithinTx runs fn as one atomic unit. Nothing fn writes is visible
	// to other callers unless fn returns nil and the commit succeeds.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
	PingContext(ctx context.Context) error
}
