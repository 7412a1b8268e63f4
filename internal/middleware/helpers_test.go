package middleware

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body)) //nolint:errcheck // test helper
	})
}

// asUser attaches an authenticated principal to r
func asUser(r *http.Request, userID int64) *http.Request {
	p := auth.Principal{CIN: "12345678", Role: models.RoleUser, UserID: userID}
	return r.WithContext(auth.WithPrincipal(r.Context(), p))
}
