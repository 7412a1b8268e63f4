package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/models"
)

type stubVerifier struct {
	principal auth.Principal
	err       error
	seen      string
}

func (s *stubVerifier) Verify(_ context.Context, token string) (auth.Principal, error) {
	s.seen = token
	return s.principal, s.err
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi", ok: true},
		{header: "bearer abc", want: "abc", ok: true},
		{header: "Bearer   ", ok: false},
		{header: "Basic dXNlcjpwYXNz", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, ok := BearerToken(req)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// secured marks r the way the generated server marks bearerAuth operations
func secured(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), api.BearerAuthScopes, []string{}))
}

func TestAuthenticate_StoresPrincipal(t *testing.T) {
	verifier := &stubVerifier{principal: auth.Principal{CIN: "12345678", Role: models.RoleAdmin, UserID: 3}}

	var (
		got   auth.Principal
		token string
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := auth.PrincipalFromContext(r.Context())
		require.True(t, ok)
		got = p
		token, ok = auth.TokenFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	})

	req := secured(httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil))
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()

	Authenticate(verifier, nil)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "session-token", verifier.seen)
	assert.Equal(t, "session-token", token)
	assert.Equal(t, int64(3), got.UserID)
	assert.True(t, got.IsAdmin())
}

func TestAuthenticate_MissingToken(t *testing.T) {
	verifier := &stubVerifier{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	rec := httptest.NewRecorder()
	Authenticate(verifier, nil)(next).ServeHTTP(rec, secured(httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
	assert.Contains(t, rec.Body.String(), `"error":"invalid_token"`)
	assert.Empty(t, verifier.seen)
}

func TestAuthenticate_RejectedTokenUsesErrorWriter(t *testing.T) {
	verifyErr := errors.New("token revoked")
	verifier := &stubVerifier{err: verifyErr}

	var written error
	writeErr := func(w http.ResponseWriter, r *http.Request, err error) {
		written = err
		w.WriteHeader(http.StatusUnauthorized)
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a rejected token")
	})

	req := secured(httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil))
	req.Header.Set("Authorization", "Bearer revoked")
	rec := httptest.NewRecorder()

	Authenticate(verifier, writeErr)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.ErrorIs(t, written, verifyErr)
}

func TestAuthenticate_PublicOperationPassesThrough(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("must not be called")}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := auth.PrincipalFromContext(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()

	Authenticate(verifier, nil)(next).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, verifier.seen)
}
