package service

import (
	"context"
	"time"

	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/models"
	"github.com/shopspring/decimal"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Ledger handles account and balance operations
type Ledger interface {
	Open(ctx context.Context, principal auth.Principal, input OpenAccountInput) (*models.Account, error)
	Deposit(ctx context.Context, principal auth.Principal, accountNumber string, amount decimal.Decimal) (*MutationResult, error)
	Withdraw(ctx context.Context, principal auth.Principal, accountNumber string, amount decimal.Decimal) (*MutationResult, error)
	ListAccounts(ctx context.Context, principal auth.Principal, cin string) ([]*models.Account, error)
	GetAccount(ctx context.Context, principal auth.Principal, accountNumber string) (*models.Account, error)
	UpdateAccountKind(ctx context.Context, principal auth.Principal, accountNumber string, kind models.AccountKind) (*models.Account, error)
}

// TransactionLister handles transaction history queries
type TransactionLister interface {
	List(ctx context.Context, principal auth.Principal, filter models.TransactionFilter) ([]*models.Transaction, error)
}

// SessionManager handles authentication and session lifecycle
type SessionManager interface {
	Login(ctx context.Context, clientIdentifier, password string) (*LoginResult, error)
	Verify(ctx context.Context, token string) (auth.Principal, error)
	Revoke(ctx context.Context, token string) error
	IssuePasswordResetToken(ctx context.Context, userID int64) (string, time.Time, error)
	RequestPasswordRecovery(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, principal auth.Principal, oldPassword, newPassword string) error
}

// TokenVerifier resolves bearer tokens to principals
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (auth.Principal, error)
}

// TwoFactorEnroller handles SMS two-factor enrollment
type TwoFactorEnroller interface {
	Start(ctx context.Context, principal auth.Principal, phone string) (*TwoFactorStatus, error)
	Confirm(ctx context.Context, principal auth.Principal, code string) (*TwoFactorStatus, error)
	Status(ctx context.Context, principal auth.Principal) (*TwoFactorStatus, error)
}

// UserDirectory handles registration and profile management
type UserDirectory interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	List(ctx context.Context, principal auth.Principal, filter models.UserFilter) ([]*models.User, error)
	UpdateContact(ctx context.Context, principal auth.Principal, cin string, update models.ContactUpdate) (*models.User, error)
}

// ExchangeRates handles currency conversion lookups
type ExchangeRates interface {
	Rate(ctx context.Context, base, target string) (*ExchangeRate, error)
}

// LocationDirectory handles the public branch and ATM listing
type LocationDirectory interface {
	List(ctx context.Context, locationType *models.LocationType) ([]*models.Location, error)
}

// Ensure concrete types implement interfaces
var (
	_ Ledger            = (*LedgerService)(nil)
	_ TransactionLister = (*TransactionService)(nil)
	_ SessionManager    = (*SessionService)(nil)
	_ TokenVerifier     = (*SessionService)(nil)
	_ TwoFactorEnroller = (*TwoFactorService)(nil)
	_ UserDirectory     = (*UserService)(nil)
	_ ExchangeRates     = (*ExchangeService)(nil)
	_ LocationDirectory = (*DirectoryService)(nil)
)
