package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/benx421/easydinar/internal/models"
)

type transactionRepository struct {
	s *Store
	u *unit
}

func (r *transactionRepository) Create(_ context.Context, txn *models.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	accounts := accountRepository{s: r.s, u: r.u}
	if accounts.current(txn.AccountNumber) == nil {
		return fmt.Errorf("transaction account %s: %w", txn.AccountNumber, models.ErrNotFound)
	}

	r.s.nextSeq++
	txn.Seq = r.s.nextSeq

	stored := *txn
	if r.u == nil {
		r.s.transactions = append(r.s.transactions, &stored)
		return nil
	}
	r.u.txns = append(r.u.txns, &stored)
	return nil
}

func (r *transactionRepository) Query(_ context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := r.s.transactions
	if r.u != nil {
		all = append(append([]*models.Transaction(nil), all...), r.u.txns...)
	}

	var start, end time.Time
	if filter.Date != nil {
		y, m, d := filter.Date.UTC().Date()
		start = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 0, 1)
	}

	var out []*models.Transaction
	for _, txn := range all {
		if filter.AccountNumber != nil && txn.AccountNumber != *filter.AccountNumber {
			continue
		}
		if filter.CIN != nil && r.s.ownerCIN(txn.AccountNumber) != *filter.CIN {
			continue
		}
		if filter.Date != nil && (txn.CreatedAt.Before(start) || !txn.CreatedAt.Before(end)) {
			continue
		}
		c := *txn
		out = append(out, &c)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Seq > out[j].Seq
	})
	return out, nil
}

// ownerCIN resolves the CIN of an account's owner. Callers hold s.mu.
func (s *Store) ownerCIN(accountNumber string) string {
	acc, ok := s.accounts[accountNumber]
	if !ok {
		return ""
	}
	if owner, ok := s.users[acc.UserID]; ok {
		return owner.CIN
	}
	return ""
}
