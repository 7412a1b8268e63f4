// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAccountRepository is a mock of repository.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a mock that asserts its expectations on cleanup
func NewMockAccountRepository(t testingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	ret := m.Called(ctx, accountNumber)
	return accountOrNil(ret.Get(0)), ret.Error(1)
}

func (m *MockAccountRepository) FindByAccountNumberForUpdate(ctx context.Context, accountNumber string) (*models.Account, error) {
	ret := m.Called(ctx, accountNumber)
	return accountOrNil(ret.Get(0)), ret.Error(1)
}

func (m *MockAccountRepository) ListByOwnerCIN(ctx context.Context, cin string) ([]*models.Account, error) {
	ret := m.Called(ctx, cin)
	accounts, _ := ret.Get(0).([]*models.Account)
	return accounts, ret.Error(1)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal, updatedAt time.Time) error {
	return m.Called(ctx, accountNumber, balance, updatedAt).Error(0)
}

func (m *MockAccountRepository) UpdateKind(ctx context.Context, accountNumber string, kind models.AccountKind) error {
	return m.Called(ctx, accountNumber, kind).Error(0)
}

func accountOrNil(v any) *models.Account {
	acc, _ := v.(*models.Account)
	return acc
}

// MockTransactionRepository is a mock of repository.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

// NewMockTransactionRepository creates a mock that asserts its expectations on cleanup
func NewMockTransactionRepository(t testingT) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) Query(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	ret := m.Called(ctx, filter)
	txns, _ := ret.Get(0).([]*models.Transaction)
	return txns, ret.Error(1)
}

// MockUserRepository is a mock of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock that asserts its expectations on cleanup
func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	ret := m.Called(ctx, id)
	return userOrNil(ret.Get(0)), ret.Error(1)
}

func (m *MockUserRepository) FindByClientIdentifier(ctx context.Context, clientIdentifier string) (*models.User, error) {
	ret := m.Called(ctx, clientIdentifier)
	return userOrNil(ret.Get(0)), ret.Error(1)
}

func (m *MockUserRepository) FindByCIN(ctx context.Context, cin string) (*models.User, error) {
	ret := m.Called(ctx, cin)
	return userOrNil(ret.Get(0)), ret.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ret := m.Called(ctx, email)
	return userOrNil(ret.Get(0)), ret.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	ret := m.Called(ctx, filter)
	users, _ := ret.Get(0).([]*models.User)
	return users, ret.Error(1)
}

func (m *MockUserRepository) UpdateContact(ctx context.Context, id int64, update models.ContactUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string, changedAt time.Time) error {
	return m.Called(ctx, id, passwordHash, changedAt).Error(0)
}

func (m *MockUserRepository) UpdateTwoFactor(ctx context.Context, id int64, transition models.TwoFactorTransition) error {
	return m.Called(ctx, id, transition).Error(0)
}

func userOrNil(v any) *models.User {
	user, _ := v.(*models.User)
	return user
}

// MockIdempotencyRepository is a mock of repository.IdempotencyRepository
type MockIdempotencyRepository struct {
	mock.Mock
}

// NewMockIdempotencyRepository creates a mock that asserts its expectations on cleanup
func NewMockIdempotencyRepository(t testingT) *MockIdempotencyRepository {
	m := &MockIdempotencyRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIdempotencyRepository) Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	ret := m.Called(ctx, key, requestPath)
	idemKey, _ := ret.Get(0).(*models.IdempotencyKey)
	return idemKey, ret.Error(1)
}

func (m *MockIdempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	return m.Called(ctx, idemKey).Error(0)
}

var (
	_ repository.AccountRepository     = (*MockAccountRepository)(nil)
	_ repository.TransactionRepository = (*MockTransactionRepository)(nil)
	_ repository.UserRepository        = (*MockUserRepository)(nil)
	_ repository.IdempotencyRepository = (*MockIdempotencyRepository)(nil)
)
