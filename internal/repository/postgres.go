package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/benx421/easydinar/internal/db"
)

// PostgresStore implements Store on top of a PostgreSQL pool
type PostgresStore struct {
	db *db.DB
}

// NewPostgresStore creates a new PostgresStore
func NewPostgresStore(database *db.DB) *PostgresStore {
	return &PostgresStore{db: database}
}

func (s *PostgresStore) Accounts() AccountRepository {
	return NewAccountRepository(s.db)
}

func (s *PostgresStore) Transactions() TransactionRepository {
	return NewTransactionRepository(s.db)
}

func (s *PostgresStore) Users() UserRepository {
	return NewUserRepository(s.db)
}

func (s *PostgresStore) Idempotency() IdempotencyRepository {
	return NewIdempotencyRepository(s.db)
}

func (s *PostgresStore) Locations() LocationRepository {
	return NewLocationRepository(s.db)
}

func (s *PostgresStore) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithinTx runs fn inside a READ COMMITTED transaction. Row locks taken with
// FindByAccountNumberForUpdate serialize concurrent units on the same account.
func (s *PostgresStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	repos := Repositories{
		Accounts:     NewAccountRepository(tx),
		Transactions: NewTransactionRepository(tx),
	}

	if err := fn(ctx, repos); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

var _ Store = (*PostgresStore)(nil)
