package auth

import (
	"context"

	"github.com/benx421/easydinar/internal/models"
)

// Principal is the verified identity behind a request
type Principal struct {
	CIN    string
	Role   models.Role
	UserID int64
}

// IsAdmin reports whether the principal holds the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// SelfOrAdmin allows admins and the user identified by cin
func SelfOrAdmin(p Principal, cin string) bool {
	return p.IsAdmin() || (p.CIN != "" && p.CIN == cin)
}

// AdminOnly allows admins
func AdminOnly(p Principal) bool {
	return p.IsAdmin()
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal stored by WithPrincipal
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

type tokenCtxKey struct{}

// WithToken returns a copy of ctx carrying the raw bearer token the
// principal was resolved from
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// TokenFromContext returns the token stored by WithToken
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenCtxKey{}).(string)
	return token, ok && token != ""
}
