package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteError writes an Error body with the given status. It serves the
// paths that run before a strict handler can build a typed response.
func WriteError(w http.ResponseWriter, status int, code, message string, violations ...Violation) {
	body := Error{Error: code, Message: message}
	if len(violations) > 0 {
		body.Violations = &violations
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to encode error body", "error", err)
	}
}
