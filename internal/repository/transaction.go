package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/benx421/easydinar/internal/db"
	"github.com/benx421/easydinar/internal/models"
)

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	db db.DBTX
}

// NewTransactionRepository creates a new TransactionRepository bound to a pool or transaction
func NewTransactionRepository(database db.DBTX) TransactionRepository {
	return &transactionRepository{db: database}
}

// Create appends a transaction and fills in its sequence number
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, account_number, type, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING seq
	`

	err := r.db.QueryRowContext(ctx, query,
		txn.ID,
		txn.AccountNumber,
		txn.Type,
		txn.Amount,
		txn.CreatedAt,
	).Scan(&txn.Seq)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// Query returns the transactions matching filter, newest first. Ties on
// created_at are broken by insertion order.
func (r *transactionRepository) Query(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	var (
		conds []string
		args  []any
	)
	if filter.CIN != nil {
		args = append(args, *filter.CIN)
		conds = append(conds, fmt.Sprintf("u.cin = $%d", len(args)))
	}
	if filter.AccountNumber != nil {
		args = append(args, *filter.AccountNumber)
		conds = append(conds, fmt.Sprintf("t.account_number = $%d", len(args)))
	}
	if filter.Date != nil {
		start, end := dayBounds(*filter.Date)
		args = append(args, start, end)
		conds = append(conds, fmt.Sprintf("t.created_at >= $%d AND t.created_at < $%d", len(args)-1, len(args)))
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT t.id, t.seq, t.account_number, t.type, t.amount, t.created_at
		FROM transactions t
		JOIN accounts a ON a.account_number = t.account_number
		JOIN users u ON u.id = a.user_id
	`)
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY t.created_at DESC, t.seq DESC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close() //nolint:errcheck // close error is not critical in defer
	}()

	var txns []*models.Transaction
	for rows.Next() {
		var txn models.Transaction
		if err := rows.Scan(
			&txn.ID,
			&txn.Seq,
			&txn.AccountNumber,
			&txn.Type,
			&txn.Amount,
			&txn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, &txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}

// dayBounds returns the UTC calendar day containing t as a half-open interval
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
