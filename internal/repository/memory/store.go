// Package memory provides an in-process implementation of the repository
// interfaces for development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/repository"
)

// Store keeps all ledger state in process memory. Units of work started with
// WithinTx lock the accounts they read for update and buffer their writes
// until commit.
type Store struct {
	users        map[int64]*models.User
	accounts     map[string]*models.Account
	reserved     map[string]struct{}
	locks        map[string]chan struct{}
	idempotency  map[string]*models.IdempotencyKey
	transactions []*models.Transaction
	locations    []*models.Location
	nextUserID   int64
	nextSeq      int64
	mu           sync.Mutex
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		users:       make(map[int64]*models.User),
		accounts:    make(map[string]*models.Account),
		reserved:    make(map[string]struct{}),
		locks:       make(map[string]chan struct{}),
		idempotency: make(map[string]*models.IdempotencyKey),
	}
}

func (s *Store) Accounts() repository.AccountRepository {
	return &accountRepository{s: s}
}

func (s *Store) Transactions() repository.TransactionRepository {
	return &transactionRepository{s: s}
}

func (s *Store) Users() repository.UserRepository {
	return &userRepository{s: s}
}

func (s *Store) Idempotency() repository.IdempotencyRepository {
	return &idempotencyRepository{s: s}
}

func (s *Store) Locations() repository.LocationRepository {
	return &locationRepository{s: s}
}

func (s *Store) PingContext(ctx context.Context) error {
	return ctx.Err()
}

// WithinTx runs fn as one unit. Buffered writes are applied only if fn
// returns nil; account locks are released either way.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	u := &unit{
		s:       s,
		held:    make(map[string]chan struct{}),
		created: make(map[string]*models.Account),
		staged:  make(map[string]*models.Account),
	}
	defer u.release()

	repos := repository.Repositories{
		Accounts:     &accountRepository{s: s, u: u},
		Transactions: &transactionRepository{s: s, u: u},
	}

	if err := fn(ctx, repos); err != nil {
		u.rollback()
		return err
	}

	u.commit()
	return nil
}

// lockFor returns the lock channel for an account number, creating it on first use
func (s *Store) lockFor(accountNumber string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.locks[accountNumber]
	if !ok {
		ch = make(chan struct{}, 1)
		s.locks[accountNumber] = ch
	}
	return ch
}

// unit is the state of one WithinTx call
type unit struct {
	s       *Store
	held    map[string]chan struct{}
	created map[string]*models.Account
	staged  map[string]*models.Account
	txns    []*models.Transaction
}

func (u *unit) lock(ctx context.Context, accountNumber string) error {
	if _, ok := u.held[accountNumber]; ok {
		return nil
	}

	ch := u.s.lockFor(accountNumber)
	select {
	case ch <- struct{}{}:
		u.held[accountNumber] = ch
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (u *unit) commit() {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for num, acc := range u.created {
		u.s.accounts[num] = acc
		delete(u.s.reserved, num)
	}
	for num, acc := range u.staged {
		if _, ok := u.s.accounts[num]; ok {
			u.s.accounts[num] = acc
		}
	}
	u.s.transactions = append(u.s.transactions, u.txns...)
}

func (u *unit) rollback() {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for num := range u.created {
		delete(u.s.reserved, num)
	}
}

func (u *unit) release() {
	for num, ch := range u.held {
		<-ch
		delete(u.held, num)
	}
}

var _ repository.Store = (*Store)(nil)
