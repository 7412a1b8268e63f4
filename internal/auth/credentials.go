// Package auth provides the credential, token, revocation and authorization
// primitives behind authenticated sessions.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier hashes passwords and checks candidates against stored hashes
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// BcryptVerifier implements CredentialVerifier with bcrypt
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a verifier hashing at the given bcrypt cost
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash returns the bcrypt hash of password
func (v *BcryptVerifier) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. Malformed hashes never match.
func (v *BcryptVerifier) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var _ CredentialVerifier = (*BcryptVerifier)(nil)
