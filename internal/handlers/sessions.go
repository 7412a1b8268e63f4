package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/auth"
)

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(
	ctx context.Context,
	request api.LoginRequestObject,
) (api.LoginResponseObject, error) {
	result, err := h.sessions.Login(ctx, request.Body.ClientIdentifier, request.Body.Password)
	if err != nil {
		status, body := h.failure("Login", err)
		switch status {
		case http.StatusBadRequest:
			return api.Login400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case http.StatusUnauthorized:
			return api.Login401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
		case http.StatusInternalServerError:
		default:
			body = h.undeclared("Login", status, body)
		}
		return api.Login500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.Login200JSONResponse{
		AccessToken:      result.Token,
		TokenType:        api.LoginResponseTokenTypeBearer,
		ExpiresAt:        result.ExpiresAt,
		ClientIdentifier: result.ClientIdentifier,
		Cin:              result.CIN,
		Role:             api.Role(result.Role),
	}, nil
}

// Logout handles POST /api/v1/auth/logout. The token is the one the
// authentication middleware resolved.
func (h *Handler) Logout(
	ctx context.Context,
	_ api.LogoutRequestObject,
) (api.LogoutResponseObject, error) {
	var err error = errUnauthenticated
	if token, ok := auth.TokenFromContext(ctx); ok {
		err = h.sessions.Revoke(ctx, token)
	}
	if err == nil {
		return api.Logout204Response{}, nil
	}

	status, body := h.failure("Logout", err)
	switch status {
	case http.StatusUnauthorized:
		return api.Logout401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("Logout", status, body)
	}
	return api.Logout500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}

// ChangePassword handles POST /api/v1/auth/password
func (h *Handler) ChangePassword(
	ctx context.Context,
	request api.ChangePasswordRequestObject,
) (api.ChangePasswordResponseObject, error) {
	p, err := principal(ctx)
	if err == nil {
		err = h.sessions.ChangePassword(ctx, p, request.Body.OldPassword, request.Body.NewPassword)
	}
	if err == nil {
		return api.ChangePassword204Response{}, nil
	}

	status, body := h.failure("ChangePassword", err)
	switch status {
	case http.StatusBadRequest:
		return api.ChangePassword400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusUnauthorized:
		return api.ChangePassword401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.ChangePassword404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("ChangePassword", status, body)
	}
	return api.ChangePassword500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}

// RequestPasswordRecovery handles POST /api/v1/auth/password-recovery
func (h *Handler) RequestPasswordRecovery(
	ctx context.Context,
	request api.RequestPasswordRecoveryRequestObject,
) (api.RequestPasswordRecoveryResponseObject, error) {
	err := h.sessions.RequestPasswordRecovery(ctx, request.Body.Email)
	if err == nil {
		return api.RequestPasswordRecovery202JSONResponse{Message: "Password reset link sent to your email"}, nil
	}

	status, body := h.failure("RequestPasswordRecovery", err)
	switch status {
	case http.StatusBadRequest:
		return api.RequestPasswordRecovery400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.RequestPasswordRecovery404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusBadGateway:
		return api.RequestPasswordRecovery502JSONResponse{BadGatewayJSONResponse: api.BadGatewayJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("RequestPasswordRecovery", status, body)
	}
	return api.RequestPasswordRecovery500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}

// CompletePasswordReset handles POST /api/v1/auth/password-reset
func (h *Handler) CompletePasswordReset(
	ctx context.Context,
	request api.CompletePasswordResetRequestObject,
) (api.CompletePasswordResetResponseObject, error) {
	err := h.sessions.CompletePasswordReset(ctx, request.Body.Token, request.Body.NewPassword)
	if err == nil {
		return api.CompletePasswordReset204Response{}, nil
	}

	status, body := h.failure("CompletePasswordReset", err)
	switch status {
	case http.StatusBadRequest:
		return api.CompletePasswordReset400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusUnauthorized:
		return api.CompletePasswordReset401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("CompletePasswordReset", status, body)
	}
	return api.CompletePasswordReset500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}
