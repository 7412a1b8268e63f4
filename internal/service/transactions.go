package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/repository"
)

// TransactionService serves transaction history queries
type TransactionService struct {
	store  repository.Store
	logger *slog.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(store repository.Store, logger *slog.Logger) *TransactionService {
	return &TransactionService{store: store, logger: logger}
}

// List returns matching transactions newest first. Non-admins only ever see
// their own accounts.
func (s *TransactionService) List(ctx context.Context, principal auth.Principal, filter models.TransactionFilter) ([]*models.Transaction, error) {
	var v violations
	if filter.CIN != nil {
		v.check("cin", ValidateCIN(*filter.CIN))
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if !principal.IsAdmin() {
		if filter.CIN != nil && !auth.SelfOrAdmin(principal, *filter.CIN) {
			return nil, newForbiddenError()
		}
		own := principal.CIN
		filter.CIN = &own

		if filter.AccountNumber != nil {
			account, err := s.store.Accounts().FindByAccountNumber(ctx, *filter.AccountNumber)
			switch {
			case errors.Is(err, models.ErrNotFound):
				// Nothing to see, the owner filter leaves the result empty.
			case err != nil:
				return nil, newInternalError("failed to load account", err)
			case !auth.SelfOrAdmin(principal, account.OwnerCIN):
				return nil, newForbiddenError()
			}
		}
	}

	txns, err := s.store.Transactions().Query(ctx, filter)
	if err != nil {
		return nil, newInternalError("failed to query transactions", err)
	}
	if len(txns) == 0 {
		return nil, newNotFoundError(ErrCodeNoTransactions, "no transactions found")
	}

	return txns, nil
}
