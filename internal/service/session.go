package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SessionOptions holds token lifetimes and password recovery settings
type SessionOptions struct {
	PasswordResetURL string
	SessionTTL       time.Duration
	ResetTokenTTL    time.Duration
	MailTimeout      time.Duration
}

// LoginResult is returned by a successful login
type LoginResult struct {
	ExpiresAt        time.Time
	Token            string
	ClientIdentifier string
	CIN              string
	Role             models.Role
}

// SessionService issues, verifies and revokes session tokens
type SessionService struct {
	users       repository.UserRepository
	verifier    auth.CredentialVerifier
	codec       auth.TokenCodec
	revocations auth.RevocationStore
	mailer      Mailer
	logger      *slog.Logger
	tracer      trace.Tracer
	now         func() time.Time
	dummyHash   string
	opts        SessionOptions
	dummyOnce   sync.Once
}

// NewSessionService creates a new SessionService
func NewSessionService(
	users repository.UserRepository,
	verifier auth.CredentialVerifier,
	codec auth.TokenCodec,
	revocations auth.RevocationStore,
	mailer Mailer,
	logger *slog.Logger,
	opts SessionOptions,
) *SessionService {
	return &SessionService{
		users:       users,
		verifier:    verifier,
		codec:       codec,
		revocations: revocations,
		mailer:      mailer,
		logger:      logger,
		tracer:      otel.Tracer(tracerName),
		now:         time.Now,
		opts:        opts,
	}
}

// Login checks credentials and issues a session token
func (s *SessionService) Login(ctx context.Context, clientIdentifier, password string) (*LoginResult, error) {
	user, err := s.users.FindByClientIdentifier(ctx, clientIdentifier)
	if errors.Is(err, models.ErrNotFound) {
		// Spend the same hashing time as a real check.
		s.verifier.Verify(s.dummy(), password)
		return nil, newAuthenticationError(ErrCodeInvalidCredentials, "invalid credentials", nil)
	}
	if err != nil {
		return nil, newInternalError("failed to load user", err)
	}

	if !s.verifier.Verify(user.PasswordHash, password) {
		s.logger.Info("login rejected", "user_id", user.ID)
		return nil, newAuthenticationError(ErrCodeInvalidCredentials, "invalid credentials", nil)
	}

	token, expiresAt, err := s.codec.Issue(auth.Claims{
		UserID:          user.ID,
		CIN:             user.CIN,
		Role:            user.Role,
		Purpose:         auth.PurposeSession,
		PasswordVersion: passwordVersion(user),
	}, s.opts.SessionTTL)
	if err != nil {
		return nil, newInternalError("failed to issue token", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return &LoginResult{
		Token:            token,
		ExpiresAt:        expiresAt,
		ClientIdentifier: user.ClientIdentifier,
		CIN:              user.CIN,
		Role:             user.Role,
	}, nil
}

func (s *SessionService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.verifier.Hash("dummy-Passw0rd!")
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}

// Verify resolves a session token to the principal it currently stands for.
// A revoked token is rejected even while its signature and expiry are valid.
func (s *SessionService) Verify(ctx context.Context, token string) (auth.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "session.verify")
	defer span.End()

	principal, err := s.verify(ctx, token)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token rejected")
		return auth.Principal{}, err
	}

	span.SetAttributes(attribute.Int64("user.id", principal.UserID))
	return principal, nil
}

func (s *SessionService) verify(ctx context.Context, token string) (auth.Principal, error) {
	claims, err := s.decode(token, auth.PurposeSession)
	if err != nil {
		return auth.Principal{}, err
	}

	revoked, err := s.revocations.IsRevoked(ctx, token)
	if err != nil {
		return auth.Principal{}, newInternalError("failed to check token revocation", err)
	}
	if revoked {
		return auth.Principal{}, newAuthenticationError(ErrCodeTokenRevoked, "token has been revoked", nil)
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, models.ErrNotFound) {
		return auth.Principal{}, newAuthenticationError(ErrCodeInvalidToken, "token subject no longer exists", nil)
	}
	if err != nil {
		return auth.Principal{}, newInternalError("failed to load user", err)
	}

	if claims.PasswordVersion != passwordVersion(user) {
		return auth.Principal{}, newAuthenticationError(ErrCodeTokenRevoked, "token predates the last password change", nil)
	}

	return auth.Principal{UserID: user.ID, CIN: user.CIN, Role: user.Role}, nil
}

func (s *SessionService) decode(token string, purpose auth.Purpose) (*auth.Claims, error) {
	claims, err := s.codec.Decode(token, purpose)
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return nil, newAuthenticationError(ErrCodeTokenExpired, "token has expired", err)
	case err != nil:
		return nil, newAuthenticationError(ErrCodeInvalidToken, "invalid token", err)
	}
	return claims, nil
}

// Revoke invalidates a session token until it would have expired. Revoking
// the same token twice succeeds.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	claims, err := s.decode(token, auth.PurposeSession)
	if err != nil {
		return err
	}

	if err := s.revocations.Revoke(ctx, token, claims.ExpiresAt.Time); err != nil {
		return newInternalError("failed to revoke token", err)
	}

	s.logger.Info("session revoked", "user_id", claims.UserID)
	return nil
}

// IssuePasswordResetToken issues a short-lived token that only authorizes a password reset
func (s *SessionService) IssuePasswordResetToken(ctx context.Context, userID int64) (string, time.Time, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", time.Time{}, newNotFoundError(ErrCodeUserNotFound, "user not found")
		}
		return "", time.Time{}, newInternalError("failed to load user", err)
	}

	token, expiresAt, err := s.codec.Issue(auth.Claims{
		UserID:          userID,
		Purpose:         auth.PurposePasswordReset,
		PasswordVersion: passwordVersion(user),
	}, s.opts.ResetTokenTTL)
	if err != nil {
		return "", time.Time{}, newInternalError("failed to issue reset token", err)
	}

	return token, expiresAt, nil
}

// RequestPasswordRecovery emails a password reset link to the user owning email
func (s *SessionService) RequestPasswordRecovery(ctx context.Context, email string) error {
	var v violations
	v.check("email", ValidateEmail(email))
	if err := v.err(); err != nil {
		return err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return newNotFoundError(ErrCodeUserNotFound, "no user with this email")
	}
	if err != nil {
		return newInternalError("failed to load user", err)
	}

	token, _, err := s.IssuePasswordResetToken(ctx, user.ID)
	if err != nil {
		return err
	}

	link, err := url.Parse(s.opts.PasswordResetURL)
	if err != nil {
		return newInternalError("invalid password reset url", err)
	}
	q := link.Query()
	q.Set("token", token)
	link.RawQuery = q.Encode()

	mailCtx, cancel := context.WithTimeout(ctx, s.opts.MailTimeout)
	defer cancel()

	err = s.mailer.SendPasswordReset(mailCtx, PasswordResetMessage{
		To:        user.Email,
		FirstName: user.FirstName,
		Link:      link.String(),
	})
	if err != nil {
		s.logger.Error("failed to send password reset email", "user_id", user.ID, "error", err)
		return newExternalError(ErrCodeMailDelivery, "failed to send password recovery email", err)
	}

	s.logger.Info("password recovery requested", "user_id", user.ID)
	return nil
}

// CompletePasswordReset sets a new password using a reset token. Every
// session issued before the reset stops verifying.
func (s *SessionService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	claims, err := s.decode(token, auth.PurposePasswordReset)
	if err != nil {
		return err
	}

	var v violations
	for _, msg := range PasswordViolations(newPassword) {
		v.add("new_password", msg)
	}
	if err := v.err(); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, models.ErrNotFound) {
		return newAuthenticationError(ErrCodeInvalidToken, "token subject no longer exists", nil)
	}
	if err != nil {
		return newInternalError("failed to load user", err)
	}

	// A reset token is spent once the password it was issued against changes.
	if claims.PasswordVersion != passwordVersion(user) {
		return newAuthenticationError(ErrCodeTokenRevoked, "reset token has already been used", nil)
	}

	if err := s.setPassword(ctx, user.ID, newPassword); err != nil {
		return err
	}

	s.logger.Info("password reset completed", "user_id", user.ID)
	return nil
}

// ChangePassword replaces the principal's password after checking the old one
func (s *SessionService) ChangePassword(ctx context.Context, principal auth.Principal, oldPassword, newPassword string) error {
	var v violations
	for _, msg := range PasswordViolations(newPassword) {
		v.add("new_password", msg)
	}
	if oldPassword == newPassword {
		v.add("new_password", "must differ from the old password")
	}
	if err := v.err(); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, principal.UserID)
	if errors.Is(err, models.ErrNotFound) {
		return newNotFoundError(ErrCodeUserNotFound, "user not found")
	}
	if err != nil {
		return newInternalError("failed to load user", err)
	}

	if !s.verifier.Verify(user.PasswordHash, oldPassword) {
		return newAuthenticationError(ErrCodeInvalidCredentials, "old password is incorrect", nil)
	}

	if err := s.setPassword(ctx, user.ID, newPassword); err != nil {
		return err
	}

	s.logger.Info("password changed", "user_id", user.ID)
	return nil
}

func (s *SessionService) setPassword(ctx context.Context, userID int64, password string) error {
	hash, err := s.verifier.Hash(password)
	if err != nil {
		return newInternalError("failed to hash password", err)
	}

	changedAt := s.now().UTC().Truncate(time.Microsecond)
	if err := s.users.UpdatePassword(ctx, userID, hash, changedAt); err != nil {
		return newInternalError("failed to update password", err)
	}
	return nil
}

// passwordVersion matches the microsecond precision Postgres keeps for timestamps
func passwordVersion(user *models.User) int64 {
	return user.PasswordChangedAt.UnixMicro()
}
