// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/service"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func expect[M interface {
	Test(mock.TestingT)
	AssertExpectations(mock.TestingT) bool
}](t testingT, m M) M {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockLedger is a mock of service.Ledger
type MockLedger struct {
	mock.Mock
}

// NewMockLedger creates a mock that asserts its expectations on cleanup
func NewMockLedger(t testingT) *MockLedger {
	return expect(t, &MockLedger{})
}

func (m *MockLedger) Open(ctx context.Context, principal auth.Principal, input service.OpenAccountInput) (*models.Account, error) {
	ret := m.Called(ctx, principal, input)
	acc, _ := ret.Get(0).(*models.Account)
	return acc, ret.Error(1)
}

func (m *MockLedger) Deposit(ctx context.Context, principal auth.Principal, accountNumber string, amount decimal.Decimal) (*service.MutationResult, error) {
	ret := m.Called(ctx, principal, accountNumber, amount)
	res, _ := ret.Get(0).(*service.MutationResult)
	return res, ret.Error(1)
}

func (m *MockLedger) Withdraw(ctx context.Context, principal auth.Principal, accountNumber string, amount decimal.Decimal) (*service.MutationResult, error) {
	ret := m.Called(ctx, principal, accountNumber, amount)
	res, _ := ret.Get(0).(*service.MutationResult)
	return res, ret.Error(1)
}

func (m *MockLedger) ListAccounts(ctx context.Context, principal auth.Principal, cin string) ([]*models.Account, error) {
	ret := m.Called(ctx, principal, cin)
	accounts, _ := ret.Get(0).([]*models.Account)
	return accounts, ret.Error(1)
}

func (m *MockLedger) GetAccount(ctx context.Context, principal auth.Principal, accountNumber string) (*models.Account, error) {
	ret := m.Called(ctx, principal, accountNumber)
	acc, _ := ret.Get(0).(*models.Account)
	return acc, ret.Error(1)
}

func (m *MockLedger) UpdateAccountKind(ctx context.Context, principal auth.Principal, accountNumber string, kind models.AccountKind) (*models.Account, error) {
	ret := m.Called(ctx, principal, accountNumber, kind)
	acc, _ := ret.Get(0).(*models.Account)
	return acc, ret.Error(1)
}

// MockTransactionLister is a mock of service.TransactionLister
type MockTransactionLister struct {
	mock.Mock
}

// NewMockTransactionLister creates a mock that asserts its expectations on cleanup
func NewMockTransactionLister(t testingT) *MockTransactionLister {
	return expect(t, &MockTransactionLister{})
}

func (m *MockTransactionLister) List(ctx context.Context, principal auth.Principal, filter models.TransactionFilter) ([]*models.Transaction, error) {
	ret := m.Called(ctx, principal, filter)
	txns, _ := ret.Get(0).([]*models.Transaction)
	return txns, ret.Error(1)
}

// MockSessionManager is a mock of service.SessionManager
type MockSessionManager struct {
	mock.Mock
}

// NewMockSessionManager creates a mock that asserts its expectations on cleanup
func NewMockSessionManager(t testingT) *MockSessionManager {
	return expect(t, &MockSessionManager{})
}

func (m *MockSessionManager) Login(ctx context.Context, clientIdentifier, password string) (*service.LoginResult, error) {
	ret := m.Called(ctx, clientIdentifier, password)
	res, _ := ret.Get(0).(*service.LoginResult)
	return res, ret.Error(1)
}

func (m *MockSessionManager) Verify(ctx context.Context, token string) (auth.Principal, error) {
	ret := m.Called(ctx, token)
	p, _ := ret.Get(0).(auth.Principal)
	return p, ret.Error(1)
}

func (m *MockSessionManager) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionManager) IssuePasswordResetToken(ctx context.Context, userID int64) (string, time.Time, error) {
	ret := m.Called(ctx, userID)
	expiresAt, _ := ret.Get(1).(time.Time)
	return ret.String(0), expiresAt, ret.Error(2)
}

func (m *MockSessionManager) RequestPasswordRecovery(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockSessionManager) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	return m.Called(ctx, token, newPassword).Error(0)
}

func (m *MockSessionManager) ChangePassword(ctx context.Context, principal auth.Principal, oldPassword, newPassword string) error {
	return m.Called(ctx, principal, oldPassword, newPassword).Error(0)
}

// MockTwoFactorEnroller is a mock of service.TwoFactorEnroller
type MockTwoFactorEnroller struct {
	mock.Mock
}

// NewMockTwoFactorEnroller creates a mock that asserts its expectations on cleanup
func NewMockTwoFactorEnroller(t testingT) *MockTwoFactorEnroller {
	return expect(t, &MockTwoFactorEnroller{})
}

func (m *MockTwoFactorEnroller) Start(ctx context.Context, principal auth.Principal, phone string) (*service.TwoFactorStatus, error) {
	ret := m.Called(ctx, principal, phone)
	st, _ := ret.Get(0).(*service.TwoFactorStatus)
	return st, ret.Error(1)
}

func (m *MockTwoFactorEnroller) Confirm(ctx context.Context, principal auth.Principal, code string) (*service.TwoFactorStatus, error) {
	ret := m.Called(ctx, principal, code)
	st, _ := ret.Get(0).(*service.TwoFactorStatus)
	return st, ret.Error(1)
}

func (m *MockTwoFactorEnroller) Status(ctx context.Context, principal auth.Principal) (*service.TwoFactorStatus, error) {
	ret := m.Called(ctx, principal)
	st, _ := ret.Get(0).(*service.TwoFactorStatus)
	return st, ret.Error(1)
}

// MockUserDirectory is a mock of service.UserDirectory
type MockUserDirectory struct {
	mock.Mock
}

// NewMockUserDirectory creates a mock that asserts its expectations on cleanup
func NewMockUserDirectory(t testingT) *MockUserDirectory {
	return expect(t, &MockUserDirectory{})
}

func (m *MockUserDirectory) Register(ctx context.Context, input service.RegisterInput) (*models.User, error) {
	ret := m.Called(ctx, input)
	u, _ := ret.Get(0).(*models.User)
	return u, ret.Error(1)
}

func (m *MockUserDirectory) List(ctx context.Context, principal auth.Principal, filter models.UserFilter) ([]*models.User, error) {
	ret := m.Called(ctx, principal, filter)
	users, _ := ret.Get(0).([]*models.User)
	return users, ret.Error(1)
}

func (m *MockUserDirectory) UpdateContact(ctx context.Context, principal auth.Principal, cin string, update models.ContactUpdate) (*models.User, error) {
	ret := m.Called(ctx, principal, cin, update)
	u, _ := ret.Get(0).(*models.User)
	return u, ret.Error(1)
}

// MockExchangeRates is a mock of service.ExchangeRates
type MockExchangeRates struct {
	mock.Mock
}

// NewMockExchangeRates creates a mock that asserts its expectations on cleanup
func NewMockExchangeRates(t testingT) *MockExchangeRates {
	return expect(t, &MockExchangeRates{})
}

func (m *MockExchangeRates) Rate(ctx context.Context, base, target string) (*service.ExchangeRate, error) {
	ret := m.Called(ctx, base, target)
	rate, _ := ret.Get(0).(*service.ExchangeRate)
	return rate, ret.Error(1)
}

// MockLocationDirectory is a mock of service.LocationDirectory
type MockLocationDirectory struct {
	mock.Mock
}

// NewMockLocationDirectory creates a mock that asserts its expectations on cleanup
func NewMockLocationDirectory(t testingT) *MockLocationDirectory {
	return expect(t, &MockLocationDirectory{})
}

func (m *MockLocationDirectory) List(ctx context.Context, locationType *models.LocationType) ([]*models.Location, error) {
	ret := m.Called(ctx, locationType)
	locations, _ := ret.Get(0).([]*models.Location)
	return locations, ret.Error(1)
}

// MockHealthChecker is a mock of service.HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

// NewMockHealthChecker creates a mock that asserts its expectations on cleanup
func NewMockHealthChecker(t testingT) *MockHealthChecker {
	return expect(t, &MockHealthChecker{})
}

func (m *MockHealthChecker) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var (
	_ service.Ledger            = (*MockLedger)(nil)
	_ service.TransactionLister = (*MockTransactionLister)(nil)
	_ service.SessionManager    = (*MockSessionManager)(nil)
	_ service.TwoFactorEnroller = (*MockTwoFactorEnroller)(nil)
	_ service.UserDirectory     = (*MockUserDirectory)(nil)
	_ service.ExchangeRates     = (*MockExchangeRates)(nil)
	_ service.LocationDirectory = (*MockLocationDirectory)(nil)
	_ service.HealthChecker     = (*MockHealthChecker)(nil)
)
