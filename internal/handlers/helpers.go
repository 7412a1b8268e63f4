package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/eligibility"
	"github.com/benx421/easydinar/internal/service"
)

// moneyScale is the number of fractional digits rendered for amounts
const moneyScale = 3

var errUnauthenticated = &service.ServiceError{
	Kind:    service.KindAuthentication,
	Code:    service.ErrCodeInvalidToken,
	Message: "authentication required",
}

// principal returns the caller set by the authentication middleware
func principal(ctx context.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return auth.Principal{}, errUnauthenticated
	}
	return p, nil
}

func internalError() api.Error {
	return api.Error{Error: service.ErrCodeInternalError, Message: "internal error"}
}

// failure maps an error to its status and response body. Internal details
// are logged, never returned.
func (h *Handler) failure(op string, err error) (int, api.Error) {
	var scoreErr *eligibility.ValidationError
	if errors.As(err, &scoreErr) {
		violations := make([]api.Violation, 0, len(scoreErr.Fields))
		for _, f := range scoreErr.Fields {
			violations = append(violations, api.Violation{Field: f.Field, Message: f.Message})
		}
		return http.StatusBadRequest, api.Error{Error: service.ErrCodeValidation, Message: "invalid input", Violations: &violations}
	}

	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.Error("unexpected error", "operation", op, "error", err)
		return http.StatusInternalServerError, internalError()
	}

	status := statusForError(svcErr)
	switch status {
	case http.StatusInternalServerError:
		h.logger.Error("request failed", "operation", op, "code", svcErr.Code, "error", err)
		return status, internalError()
	case http.StatusBadGateway:
		h.logger.Warn("upstream provider failed", "operation", op, "code", svcErr.Code, "error", err)
	}

	body := api.Error{Error: svcErr.Code, Message: svcErr.Message}
	if len(svcErr.Violations) > 0 {
		violations := make([]api.Violation, 0, len(svcErr.Violations))
		for _, v := range svcErr.Violations {
			violations = append(violations, api.Violation{Field: v.Field, Message: v.Message})
		}
		body.Violations = &violations
	}
	return status, body
}

// undeclared logs a status the operation's contract does not list. The
// caller answers 500 instead.
func (h *Handler) undeclared(op string, status int, body api.Error) api.Error {
	h.logger.Error("error status not declared for operation", "operation", op, "status", status, "code", body.Error)
	return internalError()
}

func statusForError(e *service.ServiceError) int {
	if e.Code == service.ErrCodeInsufficientFunds {
		return http.StatusPaymentRequired
	}

	switch e.Kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindAuthentication:
		return http.StatusUnauthorized
	case service.KindAuthorization:
		return http.StatusForbidden
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	case service.KindExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// WriteRequestError answers a request the generated server could not bind
func (h *Handler) WriteRequestError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "error", err)
	api.WriteError(w, http.StatusBadRequest, service.ErrCodeValidation, "invalid request",
		api.Violation{Field: requestField(err), Message: err.Error()})
}

// WriteError renders an error outside a typed response: a strict handler
// that returned an error, or middleware running ahead of the handlers
func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := h.failure(r.Method+" "+r.URL.Path, err)
	var violations []api.Violation
	if body.Violations != nil {
		violations = *body.Violations
	}
	api.WriteError(w, status, body.Error, body.Message, violations...)
}

func requestField(err error) string {
	var invalid *api.InvalidParamFormatError
	if errors.As(err, &invalid) {
		return invalid.ParamName
	}
	var required *api.RequiredParamError
	if errors.As(err, &required) {
		return required.ParamName
	}
	var tooMany *api.TooManyValuesForParamError
	if errors.As(err, &tooMany) {
		return tooMany.ParamName
	}
	return "body"
}
