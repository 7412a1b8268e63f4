package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind is the closed set of account products
type AccountKind string

const (
	AccountKindSavings  AccountKind = "savings"
	AccountKindChecking AccountKind = "checking"
)

// Valid reports whether k is one of the known account kinds
func (k AccountKind) Valid() bool {
	return k == AccountKindSavings || k == AccountKindChecking
}

// Account represents a customer account and its current balance
type Account struct {
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	Balance       decimal.Decimal `db:"balance"`
	AccountNumber string          `db:"account_number"`
	Kind          AccountKind     `db:"kind"`
	OwnerCIN      string          `db:"-"`
	UserID        int64           `db:"user_id"`
	ID            uuid.UUID       `db:"id"`
}
