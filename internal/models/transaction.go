package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
)

// Transaction represents an immutable ledger entry for account activity
type Transaction struct {
	CreatedAt     time.Time       `db:"created_at"`
	Amount        decimal.Decimal `db:"amount"`
	AccountNumber string          `db:"account_number"`
	Type          TransactionType `db:"type"`
	Seq           int64           `db:"seq"`
	ID            uuid.UUID       `db:"id"`
}

// TransactionFilter narrows a transaction history query.
// Nil fields are not applied.
type TransactionFilter struct {
	CIN           *string
	AccountNumber *string
	Date          *time.Time
}

// IdempotencyKey tracks processed requests to prevent duplicate mutations
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}
