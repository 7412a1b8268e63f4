package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/benx421/easydinar/internal/db"
	"github.com/benx421/easydinar/internal/models"
	"github.com/shopspring/decimal"
)

const accountColumns = `
	a.id, a.account_number, a.user_id, u.cin, a.kind, a.balance, a.created_at, a.updated_at
`

// accountRepository implements AccountRepository
type accountRepository struct {
	db db.DBTX
}

// NewAccountRepository creates a new AccountRepository bound to a pool or transaction
func NewAccountRepository(database db.DBTX) AccountRepository {
	return &accountRepository{db: database}
}

// Create inserts a new account. A taken account number yields ErrDuplicateAccountNumber.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, account_number, user_id, kind, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.AccountNumber,
		account.UserID,
		account.Kind,
		account.Balance,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if constraint, ok := uniqueConstraint(err); ok && constraint == "accounts_account_number_key" {
		return models.ErrDuplicateAccountNumber
	}
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// FindByAccountNumber retrieves an account by its account number
func (r *accountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts a
		JOIN users u ON u.id = a.user_id
		WHERE a.account_number = $1
	`

	return r.findOne(ctx, query, accountNumber)
}

// FindByAccountNumberForUpdate retrieves an account and locks its row for the
// remainder of the surrounding database transaction
func (r *accountRepository) FindByAccountNumberForUpdate(ctx context.Context, accountNumber string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts a
		JOIN users u ON u.id = a.user_id
		WHERE a.account_number = $1
		FOR UPDATE OF a
	`

	return r.findOne(ctx, query, accountNumber)
}

func (r *accountRepository) findOne(ctx context.Context, query string, args ...any) (*models.Account, error) {
	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return account, nil
}

// ListByOwnerCIN returns every account owned by the user with the given CIN, oldest first
func (r *accountRepository) ListByOwnerCIN(ctx context.Context, cin string) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts a
		JOIN users u ON u.id = a.user_id
		WHERE u.cin = $1
		ORDER BY a.created_at, a.account_number
	`

	rows, err := r.db.QueryContext(ctx, query, cin)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer func() {
		_ = rows.Close() //nolint:errcheck // close error is not critical in defer
	}()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// UpdateBalance overwrites the stored balance. Callers hold the row lock.
func (r *accountRepository) UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal, updatedAt time.Time) error {
	query := `
		UPDATE accounts
		SET balance = $2, updated_at = $3
		WHERE account_number = $1
	`

	return r.execOne(ctx, "update account balance", query, accountNumber, balance, updatedAt)
}

// UpdateKind changes the product kind of an account
func (r *accountRepository) UpdateKind(ctx context.Context, accountNumber string, kind models.AccountKind) error {
	query := `
		UPDATE accounts
		SET kind = $2, updated_at = NOW()
		WHERE account_number = $1
	`

	return r.execOne(ctx, "update account kind", query, accountNumber, kind)
}

func (r *accountRepository) execOne(ctx context.Context, op, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.AccountNumber,
		&account.UserID,
		&account.OwnerCIN,
		&account.Kind,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &account, nil
}
