package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/benx421/easydinar/internal/models"
	"github.com/shopspring/decimal"
)

type accountRepository struct {
	s *Store
	u *unit
}

func (r *accountRepository) Create(_ context.Context, account *models.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[account.UserID]; !ok {
		return fmt.Errorf("account owner %d: %w", account.UserID, models.ErrNotFound)
	}
	if _, ok := r.s.accounts[account.AccountNumber]; ok {
		return models.ErrDuplicateAccountNumber
	}
	if _, ok := r.s.reserved[account.AccountNumber]; ok {
		return models.ErrDuplicateAccountNumber
	}

	stored := *account
	if r.u == nil {
		r.s.accounts[account.AccountNumber] = &stored
		return nil
	}

	r.s.reserved[account.AccountNumber] = struct{}{}
	r.u.created[account.AccountNumber] = &stored
	return nil
}

func (r *accountRepository) FindByAccountNumber(_ context.Context, accountNumber string) (*models.Account, error) {
	return r.find(accountNumber)
}

func (r *accountRepository) FindByAccountNumberForUpdate(ctx context.Context, accountNumber string) (*models.Account, error) {
	if r.u != nil {
		if _, ok := r.u.created[accountNumber]; !ok {
			if err := r.u.lock(ctx, accountNumber); err != nil {
				return nil, fmt.Errorf("failed to lock account: %w", err)
			}
		}
	}
	return r.find(accountNumber)
}

// find reads the unit's view first and falls back to committed state
func (r *accountRepository) find(accountNumber string) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	acc := r.current(accountNumber)
	if acc == nil {
		return nil, models.ErrNotFound
	}
	return r.s.withOwner(acc), nil
}

// current returns the account as seen by this repository. Callers hold s.mu.
func (r *accountRepository) current(accountNumber string) *models.Account {
	if r.u != nil {
		if acc, ok := r.u.created[accountNumber]; ok {
			return acc
		}
		if acc, ok := r.u.staged[accountNumber]; ok {
			return acc
		}
	}
	return r.s.accounts[accountNumber]
}

func (r *accountRepository) ListByOwnerCIN(_ context.Context, cin string) ([]*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var accounts []*models.Account
	for num := range r.s.accounts {
		acc := r.current(num)
		if owner, ok := r.s.users[acc.UserID]; ok && owner.CIN == cin {
			accounts = append(accounts, r.s.withOwner(acc))
		}
	}

	sort.Slice(accounts, func(i, j int) bool {
		if !accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
		}
		return accounts[i].AccountNumber < accounts[j].AccountNumber
	})
	return accounts, nil
}

func (r *accountRepository) UpdateBalance(_ context.Context, accountNumber string, balance decimal.Decimal, updatedAt time.Time) error {
	return r.update(accountNumber, func(acc *models.Account) {
		acc.Balance = balance
		acc.UpdatedAt = updatedAt
	})
}

func (r *accountRepository) UpdateKind(_ context.Context, accountNumber string, kind models.AccountKind) error {
	return r.update(accountNumber, func(acc *models.Account) {
		acc.Kind = kind
		acc.UpdatedAt = time.Now().UTC()
	})
}

func (r *accountRepository) update(accountNumber string, apply func(acc *models.Account)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	acc := r.current(accountNumber)
	if acc == nil {
		return models.ErrNotFound
	}

	next := *acc
	apply(&next)

	switch {
	case r.u == nil:
		r.s.accounts[accountNumber] = &next
	case r.u.created[accountNumber] != nil:
		r.u.created[accountNumber] = &next
	default:
		r.u.staged[accountNumber] = &next
	}
	return nil
}

// withOwner returns a copy of acc with the owner's CIN filled in. Callers hold s.mu.
func (s *Store) withOwner(acc *models.Account) *models.Account {
	out := *acc
	if owner, ok := s.users[acc.UserID]; ok {
		out.OwnerCIN = owner.CIN
	}
	return &out
}
