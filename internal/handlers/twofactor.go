package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/service"
)

func twoFactorStatus(st *service.TwoFactorStatus) api.TwoFactorStatus {
	out := api.TwoFactorStatus{State: api.TwoFactorState(st.State)}
	if st.Phone != "" {
		phone := st.Phone
		out.PhoneNumber = &phone
	}
	return out
}

// GetTwoFactorStatus handles GET /api/v1/2fa
func (h *Handler) GetTwoFactorStatus(
	ctx context.Context,
	_ api.GetTwoFactorStatusRequestObject,
) (api.GetTwoFactorStatusResponseObject, error) {
	p, err := principal(ctx)
	if err == nil {
		var status *service.TwoFactorStatus
		if status, err = h.twoFactor.Status(ctx, p); err == nil {
			return api.GetTwoFactorStatus200JSONResponse(twoFactorStatus(status)), nil
		}
	}

	status, body := h.failure("GetTwoFactorStatus", err)
	switch status {
	case http.StatusUnauthorized:
		return api.GetTwoFactorStatus401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusForbidden:
		return api.GetTwoFactorStatus403JSONResponse{ForbiddenJSONResponse: api.ForbiddenJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.GetTwoFactorStatus404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("GetTwoFactorStatus", status, body)
	}
	return api.GetTwoFactorStatus500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}

// StartTwoFactor handles POST /api/v1/2fa/start
func (h *Handler) StartTwoFactor(
	ctx context.Context,
	request api.StartTwoFactorRequestObject,
) (api.StartTwoFactorResponseObject, error) {
	p, err := principal(ctx)
	if err == nil {
		var status *service.TwoFactorStatus
		if status, err = h.twoFactor.Start(ctx, p, request.Body.PhoneNumber); err == nil {
			return api.StartTwoFactor200JSONResponse(twoFactorStatus(status)), nil
		}
	}

	status, body := h.failure("StartTwoFactor", err)
	switch status {
	case http.StatusBadRequest:
		return api.StartTwoFactor400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusUnauthorized:
		return api.StartTwoFactor401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusForbidden:
		return api.StartTwoFactor403JSONResponse{ForbiddenJSONResponse: api.ForbiddenJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.StartTwoFactor404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusConflict:
		return api.StartTwoFactor409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
	case http.StatusBadGateway:
		return api.StartTwoFactor502JSONResponse{BadGatewayJSONResponse: api.BadGatewayJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("StartTwoFactor", status, body)
	}
	return api.StartTwoFactor500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}

// ConfirmTwoFactor handles POST /api/v1/2fa/confirm
func (h *Handler) ConfirmTwoFactor(
	ctx context.Context,
	request api.ConfirmTwoFactorRequestObject,
) (api.ConfirmTwoFactorResponseObject, error) {
	p, err := principal(ctx)
	if err == nil {
		var status *service.TwoFactorStatus
		if status, err = h.twoFactor.Confirm(ctx, p, request.Body.Code); err == nil {
			return api.ConfirmTwoFactor200JSONResponse(twoFactorStatus(status)), nil
		}
	}

	status, body := h.failure("ConfirmTwoFactor", err)
	switch status {
	case http.StatusBadRequest:
		return api.ConfirmTwoFactor400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusUnauthorized:
		return api.ConfirmTwoFactor401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusForbidden:
		return api.ConfirmTwoFactor403JSONResponse{ForbiddenJSONResponse: api.ForbiddenJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.ConfirmTwoFactor404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusConflict:
		return api.ConfirmTwoFactor409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
	case http.StatusBadGateway:
		return api.ConfirmTwoFactor502JSONResponse{BadGatewayJSONResponse: api.BadGatewayJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("ConfirmTwoFactor", status, body)
	}
	return api.ConfirmTwoFactor500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}
