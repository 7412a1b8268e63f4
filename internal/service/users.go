package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/repository"
)

const clientIdentifierAttempts = 10

// RegisterInput carries a new user's details
type RegisterInput struct {
	FirstName   string
	LastName    string
	CIN         string
	PhoneNumber string
	Address     string
	Email       string
	Password    string
}

// UserService manages the user directory
type UserService struct {
	users         repository.UserRepository
	verifier      auth.CredentialVerifier
	logger        *slog.Logger
	newIdentifier func() (string, error)
	now           func() time.Time
}

// NewUserService creates a new UserService
func NewUserService(users repository.UserRepository, verifier auth.CredentialVerifier, logger *slog.Logger) *UserService {
	return &UserService{
		users:         users,
		verifier:      verifier,
		logger:        logger,
		newIdentifier: randomClientIdentifier,
		now:           time.Now,
	}
}

// Register creates a user with the user role and a generated login handle
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	var v violations
	v.check("first_name", ValidateName(input.FirstName))
	v.check("last_name", ValidateName(input.LastName))
	v.check("cin", ValidateCIN(input.CIN))
	v.check("phone_number", ValidatePhoneNumber(input.PhoneNumber))
	v.check("email", ValidateEmail(input.Email))
	if len(input.Address) > 255 {
		v.add("address", "must be at most 255 characters")
	}
	for _, msg := range PasswordViolations(input.Password) {
		v.add("password", msg)
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	hash, err := s.verifier.Hash(input.Password)
	if err != nil {
		return nil, newInternalError("failed to hash password", err)
	}
	passwordSetAt := s.now().UTC().Truncate(time.Microsecond)

	for range clientIdentifierAttempts {
		identifier, err := s.newIdentifier()
		if err != nil {
			return nil, newInternalError("failed to generate client identifier", err)
		}

		user := &models.User{
			ClientIdentifier:  identifier,
			FirstName:         strings.TrimSpace(input.FirstName),
			LastName:          strings.TrimSpace(input.LastName),
			CIN:               input.CIN,
			PhoneNumber:       input.PhoneNumber,
			Address:           input.Address,
			Email:             input.Email,
			PasswordHash:      hash,
			Role:              models.RoleUser,
			TwoFactor:         models.TwoFactorOff,
			PasswordChangedAt: passwordSetAt,
		}

		err = s.users.Create(ctx, user)
		switch {
		case errors.Is(err, models.ErrDuplicateClientIdentifier):
			continue
		case errors.Is(err, models.ErrDuplicateUser):
			return nil, &ServiceError{Kind: KindConflict, Code: ErrCodeDuplicateUser, Message: "a user with these details already exists", Err: err}
		case err != nil:
			return nil, newInternalError("failed to create user", err)
		}

		s.logger.Info("user registered", "user_id", user.ID)
		return user, nil
	}

	return nil, newConflictError(ErrCodeDuplicateUser, "could not allocate a client identifier, try again")
}

// List returns users matching filter. Non-admins can only find themselves.
func (s *UserService) List(ctx context.Context, principal auth.Principal, filter models.UserFilter) ([]*models.User, error) {
	if !principal.IsAdmin() {
		if filter.CIN != nil && !auth.SelfOrAdmin(principal, *filter.CIN) {
			return nil, newForbiddenError()
		}
		own := principal.CIN
		filter.CIN = &own
	}

	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, newInternalError("failed to list users", err)
	}
	if len(users) == 0 {
		return nil, newNotFoundError(ErrCodeUserNotFound, "no users found")
	}

	return users, nil
}

// UpdateContact changes the email, address or phone number of the user with cin
func (s *UserService) UpdateContact(ctx context.Context, principal auth.Principal, cin string, update models.ContactUpdate) (*models.User, error) {
	if !auth.SelfOrAdmin(principal, cin) {
		return nil, newForbiddenError()
	}

	var v violations
	if update.Email == nil && update.Address == nil && update.PhoneNumber == nil {
		v.add("body", "at least one of email, address or phone_number is required")
	}
	if update.Email != nil {
		v.check("email", ValidateEmail(*update.Email))
	}
	if update.PhoneNumber != nil {
		v.check("phone_number", ValidatePhoneNumber(*update.PhoneNumber))
	}
	if update.Address != nil && len(*update.Address) > 255 {
		v.add("address", "must be at most 255 characters")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	user, err := s.users.FindByCIN(ctx, cin)
	if errors.Is(err, models.ErrNotFound) {
		return nil, newNotFoundError(ErrCodeUserNotFound, "user not found")
	}
	if err != nil {
		return nil, newInternalError("failed to load user", err)
	}

	err = s.users.UpdateContact(ctx, user.ID, update)
	if errors.Is(err, models.ErrDuplicateUser) {
		return nil, &ServiceError{Kind: KindConflict, Code: ErrCodeDuplicateUser, Message: "email or phone number already in use", Err: err}
	}
	if err != nil {
		return nil, newInternalError("failed to update user", err)
	}

	s.logger.Info("user contact updated", "user_id", user.ID, "by_user_id", principal.UserID)

	updated, err := s.users.FindByID(ctx, user.ID)
	if err != nil {
		return nil, newInternalError("failed to reload user", err)
	}
	return updated, nil
}

// randomClientIdentifier returns a uniformly random 8-digit number without a leading zero
func randomClientIdentifier() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(90_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+10_000_000), nil
}
