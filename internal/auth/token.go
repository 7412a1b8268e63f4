package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/benx421/easydinar/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Purpose separates session tokens from single-use reset tokens
type Purpose string

const (
	PurposeSession       Purpose = "session"
	PurposePasswordReset Purpose = "password_reset"
)

var (
	// ErrInvalidToken covers bad signatures, wrong algorithms, malformed tokens and wrong purposes
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired indicates the token is past its expiry
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the signed payload of every token this service issues
type Claims struct {
	jwt.RegisteredClaims
	CIN     string      `json:"cin,omitempty"`
	Role    models.Role `json:"role,omitempty"`
	Purpose Purpose     `json:"purpose"`
	UserID  int64       `json:"user_id"`

	// PasswordVersion pins the token to the password in force when it was
	// issued, in microseconds since the epoch.
	PasswordVersion int64 `json:"pwv,omitempty"`
}

// TokenCodec issues and decodes signed tokens
type TokenCodec interface {
	Issue(claims Claims, ttl time.Duration) (token string, expiresAt time.Time, err error)
	Decode(token string, purpose Purpose) (*Claims, error)
}

// JWTCodec implements TokenCodec with HS256 JSON web tokens
type JWTCodec struct {
	now    func() time.Time
	secret []byte
}

// NewJWTCodec creates a codec signing with secret. A nil now uses time.Now.
func NewJWTCodec(secret []byte, now func() time.Time) *JWTCodec {
	if now == nil {
		now = time.Now
	}
	return &JWTCodec{secret: secret, now: now}
}

// Issue signs claims with iat set to now and exp set to now+ttl
func (c *JWTCodec) Issue(claims Claims, ttl time.Duration) (string, time.Time, error) {
	now := c.now()
	expiresAt := now.Add(ttl)

	claims.ID = uuid.NewString()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, claims.ExpiresAt.Time, nil
}

// Decode verifies signature and expiry and checks the token was issued for purpose
func (c *JWTCodec) Decode(token string, purpose Purpose) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(c.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	case !parsed.Valid:
		return nil, ErrInvalidToken
	}

	if claims.Purpose != purpose {
		return nil, fmt.Errorf("%w: purpose %q", ErrInvalidToken, claims.Purpose)
	}
	if claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims, nil
}

var _ TokenCodec = (*JWTCodec)(nil)
