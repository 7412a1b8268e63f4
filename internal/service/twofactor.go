package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/repository"
)

// OTPProvider sends and checks SMS one-time codes
type OTPProvider interface {
	// StartVerification sends a code to phone and returns the provider's verification id
	StartVerification(ctx context.Context, phone string) (string, error)
	// CheckCode reports whether code is the current code for phone. A wrong
	// code is not an error.
	CheckCode(ctx context.Context, phone, code string) (bool, error)
}

// TwoFactorStatus is a user's enrollment state
type TwoFactorStatus struct {
	State models.TwoFactorState
	Phone string
}

// TwoFactorService drives SMS two-factor enrollment: off -> pending -> on
type TwoFactorService struct {
	users   repository.UserRepository
	otp     OTPProvider
	logger  *slog.Logger
	timeout time.Duration
}

// NewTwoFactorService creates a new TwoFactorService
func NewTwoFactorService(users repository.UserRepository, otp OTPProvider, logger *slog.Logger, timeout time.Duration) *TwoFactorService {
	return &TwoFactorService{
		users:   users,
		otp:     otp,
		logger:  logger,
		timeout: timeout,
	}
}

// Start sends a code to phone and moves the enrollment to pending. Calling it
// again while pending sends a fresh code, possibly to a different phone.
func (s *TwoFactorService) Start(ctx context.Context, principal auth.Principal, phone string) (*TwoFactorStatus, error) {
	var v violations
	v.check("phone_number", ValidateE164(phone))
	if err := v.err(); err != nil {
		return nil, err
	}

	user, err := s.loadUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	if user.TwoFactor == models.TwoFactorOn {
		return nil, newConflictError(ErrCodeTwoFactorEnabled, "two-factor authentication is already enabled")
	}

	otpCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	verificationID, err := s.otp.StartVerification(otpCtx, phone)
	if err != nil {
		s.logger.Error("failed to send verification code", "user_id", user.ID, "error", err)
		return nil, newExternalError(ErrCodeOTPProvider, "failed to send verification code", err)
	}

	err = s.users.UpdateTwoFactor(ctx, user.ID, models.TwoFactorTransition{
		From:  []models.TwoFactorState{models.TwoFactorOff, models.TwoFactorPending},
		To:    models.TwoFactorPending,
		Phone: phone,
	})
	if errors.Is(err, models.ErrStateConflict) {
		return nil, newConflictError(ErrCodeTwoFactorEnabled, "two-factor authentication is already enabled")
	}
	if err != nil {
		return nil, newInternalError("failed to update two-factor state", err)
	}

	s.logger.Info("two-factor enrollment started", "user_id", user.ID, "verification_id", verificationID)
	return &TwoFactorStatus{State: models.TwoFactorPending, Phone: phone}, nil
}

// Confirm checks code against the pending enrollment and turns two-factor on
func (s *TwoFactorService) Confirm(ctx context.Context, principal auth.Principal, code string) (*TwoFactorStatus, error) {
	var v violations
	v.check("code", ValidateVerificationCode(code))
	if err := v.err(); err != nil {
		return nil, err
	}

	user, err := s.loadUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	switch user.TwoFactor {
	case models.TwoFactorOn:
		return nil, newConflictError(ErrCodeTwoFactorEnabled, "two-factor authentication is already enabled")
	case models.TwoFactorPending:
	default:
		return nil, newConflictError(ErrCodeTwoFactorNotPending, "no two-factor enrollment in progress")
	}

	otpCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	approved, err := s.otp.CheckCode(otpCtx, user.TwoFactorPhone, code)
	if err != nil {
		s.logger.Error("failed to check verification code", "user_id", user.ID, "error", err)
		return nil, newExternalError(ErrCodeOTPProvider, "failed to check verification code", err)
	}
	if !approved {
		return nil, newAuthenticationError(ErrCodeInvalidVerificationCode, "invalid verification code", nil)
	}

	// The code was checked against this phone; a restart to another phone voids it.
	err = s.users.UpdateTwoFactor(ctx, user.ID, models.TwoFactorTransition{
		From:      []models.TwoFactorState{models.TwoFactorPending},
		FromPhone: user.TwoFactorPhone,
		To:        models.TwoFactorOn,
		Phone:     user.TwoFactorPhone,
	})
	if errors.Is(err, models.ErrStateConflict) {
		return nil, newConflictError(ErrCodeConcurrentUpdate, "two-factor state changed concurrently")
	}
	if err != nil {
		return nil, newInternalError("failed to update two-factor state", err)
	}

	s.logger.Info("two-factor enabled", "user_id", user.ID)
	return &TwoFactorStatus{State: models.TwoFactorOn, Phone: user.TwoFactorPhone}, nil
}

// Status returns the principal's enrollment state
func (s *TwoFactorService) Status(ctx context.Context, principal auth.Principal) (*TwoFactorStatus, error) {
	user, err := s.loadUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	return &TwoFactorStatus{State: user.TwoFactor, Phone: user.TwoFactorPhone}, nil
}

func (s *TwoFactorService) loadUser(ctx context.Context, principal auth.Principal) (*models.User, error) {
	user, err := s.users.FindByID(ctx, principal.UserID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, newNotFoundError(ErrCodeUserNotFound, "user not found")
	}
	if err != nil {
		return nil, newInternalError("failed to load user", err)
	}
	if !auth.SelfOrAdmin(principal, user.CIN) {
		return nil, newForbiddenError()
	}
	return user, nil
}
