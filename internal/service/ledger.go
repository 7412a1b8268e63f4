package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/benx421/easydinar/internal/service"

// OpenAccountInput describes a new account
type OpenAccountInput struct {
	InitialBalance decimal.Decimal
	OwnerCIN       string
	Kind           models.AccountKind
}

// MutationResult is the outcome of an accepted deposit or withdrawal
type MutationResult struct {
	Account     *models.Account
	Transaction *models.Transaction
}

// LedgerService handles account balances. Every balance change and its
// transaction record are written in the same unit of work.
type LedgerService struct {
	store       repository.Store
	logger      *slog.Logger
	tracer      trace.Tracer
	numbers     *accountNumberGenerator
	now         func() time.Time
	maxAttempts int
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(store repository.Store, logger *slog.Logger, accountNumberAttempts int) *LedgerService {
	if accountNumberAttempts < 1 {
		accountNumberAttempts = 1
	}
	return &LedgerService{
		store:       store,
		logger:      logger,
		tracer:      otel.Tracer(tracerName),
		numbers:     &accountNumberGenerator{},
		now:         time.Now,
		maxAttempts: accountNumberAttempts,
	}
}

// Open creates an account for the user identified by input.OwnerCIN
func (s *LedgerService) Open(ctx context.Context, principal auth.Principal, input OpenAccountInput) (*models.Account, error) {
	var v violations
	v.check("cin", ValidateCIN(input.OwnerCIN))
	if !input.Kind.Valid() {
		v.add("account_type", "must be savings or checking")
	}
	v.check("balance", ValidateBalance(input.InitialBalance))
	if err := v.err(); err != nil {
		return nil, err
	}

	if !auth.SelfOrAdmin(principal, input.OwnerCIN) {
		return nil, newForbiddenError()
	}

	owner, err := s.store.Users().FindByCIN(ctx, input.OwnerCIN)
	if errors.Is(err, models.ErrNotFound) {
		return nil, newNotFoundError(ErrCodeUserNotFound, "no user with this CIN")
	}
	if err != nil {
		return nil, newInternalError("failed to look up account owner", err)
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		now := s.now().UTC().Truncate(time.Microsecond)
		account := &models.Account{
			ID:            uuid.New(),
			AccountNumber: s.numbers.next(owner.ID, now),
			UserID:        owner.ID,
			OwnerCIN:      owner.CIN,
			Kind:          input.Kind,
			Balance:       input.InitialBalance,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		err := s.store.Accounts().Create(ctx, account)
		if errors.Is(err, models.ErrDuplicateAccountNumber) {
			s.logger.Warn("account number collision, retrying",
				"account_number", account.AccountNumber,
				"attempt", attempt,
			)
			continue
		}
		if err != nil {
			return nil, newInternalError("failed to create account", err)
		}

		s.logger.Info("account opened",
			"account_number", account.AccountNumber,
			"user_id", owner.ID,
			"kind", account.Kind,
		)
		return account, nil
	}

	return nil, newConflictError(ErrCodeAccountNumberExhausted, "could not allocate a unique account number, try again")
}

// Deposit adds amount to the account balance and records a deposit
func (s *LedgerService) Deposit(ctx context.Context, principal auth.Principal, accountNumber string, amount decimal.Decimal) (*MutationResult, error) {
	return s.mutate(ctx, principal, accountNumber, amount, models.TransactionTypeDeposit)
}

// Withdraw removes amount from the account balance and records a withdrawal
func (s *LedgerService) Withdraw(ctx context.Context, principal auth.Principal, accountNumber string, amount decimal.Decimal) (*MutationResult, error) {
	return s.mutate(ctx, principal, accountNumber, amount, models.TransactionTypeWithdraw)
}

func (s *LedgerService) mutate(
	ctx context.Context,
	principal auth.Principal,
	accountNumber string,
	amount decimal.Decimal,
	txType models.TransactionType,
) (*MutationResult, error) {
	var v violations
	v.check("amount", ValidateAmount(amount))
	if accountNumber == "" {
		v.add("account_number", "must not be empty")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "ledger."+string(txType), trace.WithAttributes(
		attribute.String("account.number", accountNumber),
		attribute.String("amount", amount.String()),
	))
	defer span.End()

	var result *MutationResult
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		result, err = s.performMutation(ctx, repos.Accounts, repos.Transactions, principal, accountNumber, amount, txType)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "mutation rejected")
		return nil, asServiceError(err, "failed to apply "+string(txType))
	}

	s.logger.Info("balance updated",
		"account_number", accountNumber,
		"type", txType,
		"amount", amount.String(),
		"transaction_id", result.Transaction.ID,
	)
	return result, nil
}

// performMutation contains the core balance update logic. It must run inside
// a unit of work that holds the account lock taken here.
func (s *LedgerService) performMutation(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	principal auth.Principal,
	accountNumber string,
	amount decimal.Decimal,
	txType models.TransactionType,
) (*MutationResult, error) {
	account, err := accountRepo.FindByAccountNumberForUpdate(ctx, accountNumber)
	if errors.Is(err, models.ErrNotFound) {
		return nil, newNotFoundError(ErrCodeAccountNotFound, "account not found")
	}
	if err != nil {
		return nil, newInternalError("failed to load account", err)
	}

	if !auth.SelfOrAdmin(principal, account.OwnerCIN) {
		return nil, newForbiddenError()
	}

	var balance decimal.Decimal
	switch txType {
	case models.TransactionTypeDeposit:
		balance = account.Balance.Add(amount)
	case models.TransactionTypeWithdraw:
		if amount.GreaterThan(account.Balance) {
			return nil, newConflictError(ErrCodeInsufficientFunds, "insufficient funds")
		}
		balance = account.Balance.Sub(amount)
	default:
		return nil, newInternalError(fmt.Sprintf("unknown transaction type %q", txType), nil)
	}

	// Keep per-account history ordered even if the wall clock steps back.
	at := s.now().UTC().Truncate(time.Microsecond)
	if at.Before(account.UpdatedAt) {
		at = account.UpdatedAt
	}

	if err := accountRepo.UpdateBalance(ctx, accountNumber, balance, at); err != nil {
		return nil, newInternalError("failed to update balance", err)
	}

	txn := &models.Transaction{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		Type:          txType,
		Amount:        amount,
		CreatedAt:     at,
	}
	if err := transactionRepo.Create(ctx, txn); err != nil {
		return nil, newInternalError("failed to record transaction", err)
	}

	account.Balance = balance
	account.UpdatedAt = at

	return &MutationResult{Account: account, Transaction: txn}, nil
}

// ListAccounts returns the accounts of the user with the given CIN, or the
// principal's own accounts when cin is empty
func (s *LedgerService) ListAccounts(ctx context.Context, principal auth.Principal, cin string) ([]*models.Account, error) {
	if cin == "" {
		cin = principal.CIN
	}
	if !auth.SelfOrAdmin(principal, cin) {
		return nil, newForbiddenError()
	}

	accounts, err := s.store.Accounts().ListByOwnerCIN(ctx, cin)
	if err != nil {
		return nil, newInternalError("failed to list accounts", err)
	}
	if len(accounts) == 0 {
		return nil, newNotFoundError(ErrCodeNoAccounts, "no accounts found")
	}

	return accounts, nil
}

// GetAccount returns one account
func (s *LedgerService) GetAccount(ctx context.Context, principal auth.Principal, accountNumber string) (*models.Account, error) {
	account, err := s.store.Accounts().FindByAccountNumber(ctx, accountNumber)
	if errors.Is(err, models.ErrNotFound) {
		return nil, newNotFoundError(ErrCodeAccountNotFound, "account not found")
	}
	if err != nil {
		return nil, newInternalError("failed to load account", err)
	}

	if !auth.SelfOrAdmin(principal, account.OwnerCIN) {
		return nil, newForbiddenError()
	}

	return account, nil
}

// UpdateAccountKind changes an account's product kind. Balances are only
// ever changed through Deposit and Withdraw.
func (s *LedgerService) UpdateAccountKind(ctx context.Context, principal auth.Principal, accountNumber string, kind models.AccountKind) (*models.Account, error) {
	if !auth.AdminOnly(principal) {
		return nil, newForbiddenError()
	}
	if !kind.Valid() {
		var v violations
		v.add("account_type", "must be savings or checking")
		return nil, v.err()
	}

	err := s.store.Accounts().UpdateKind(ctx, accountNumber, kind)
	if errors.Is(err, models.ErrNotFound) {
		return nil, newNotFoundError(ErrCodeAccountNotFound, "account not found")
	}
	if err != nil {
		return nil, newInternalError("failed to update account", err)
	}

	s.logger.Info("account kind updated", "account_number", accountNumber, "kind", kind, "by_user_id", principal.UserID)

	return s.GetAccount(ctx, principal, accountNumber)
}

// accountNumberGenerator builds account numbers from the owner id, the UTC
// time and a process-wide counter so that numbers minted in the same second
// still differ
type accountNumberGenerator struct {
	mu  sync.Mutex
	seq uint64
}

func (g *accountNumberGenerator) next(ownerID int64, at time.Time) string {
	g.mu.Lock()
	n := g.seq % 100
	g.seq++
	g.mu.Unlock()

	return fmt.Sprintf("%06d%s%02d", ownerID%1_000_000, at.UTC().Format("0102150405"), n)
}
