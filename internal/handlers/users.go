package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/service"
)

// RegisterUser handles POST /api/v1/users
func (h *Handler) RegisterUser(
	ctx context.Context,
	request api.RegisterUserRequestObject,
) (api.RegisterUserResponseObject, error) {
	body := request.Body
	input := service.RegisterInput{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		CIN:         body.Cin,
		PhoneNumber: body.PhoneNumber,
		Email:       body.Email,
		Password:    body.Password,
	}
	if body.Address != nil {
		input.Address = *body.Address
	}

	user, err := h.users.Register(ctx, input)
	if err != nil {
		status, errBody := h.failure("RegisterUser", err)
		switch status {
		case http.StatusBadRequest:
			return api.RegisterUser400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(errBody)}, nil
		case http.StatusConflict:
			return api.RegisterUser409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(errBody)}, nil
		case http.StatusInternalServerError:
		default:
			errBody = h.undeclared("RegisterUser", status, errBody)
		}
		return api.RegisterUser500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(errBody)}, nil
	}

	return api.RegisterUser201JSONResponse(toUser(user)), nil
}

// ListUsers handles GET /api/v1/users
func (h *Handler) ListUsers(
	ctx context.Context,
	request api.ListUsersRequestObject,
) (api.ListUsersResponseObject, error) {
	p, err := principal(ctx)
	if err != nil {
		return h.listUsersError(err)
	}

	users, err := h.users.List(ctx, p, models.UserFilter{
		CIN:   request.Params.Cin,
		Email: request.Params.Email,
	})
	if err != nil {
		return h.listUsersError(err)
	}

	return api.ListUsers200JSONResponse(toUsers(users)), nil
}

func (h *Handler) listUsersError(err error) (api.ListUsersResponseObject, error) {
	status, body := h.failure("ListUsers", err)
	switch status {
	case http.StatusUnauthorized:
		return api.ListUsers401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusForbidden:
		return api.ListUsers403JSONResponse{ForbiddenJSONResponse: api.ForbiddenJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.ListUsers404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("ListUsers", status, body)
	}
	return api.ListUsers500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}

// UpdateContact handles PATCH /api/v1/users/{cin}
func (h *Handler) UpdateContact(
	ctx context.Context,
	request api.UpdateContactRequestObject,
) (api.UpdateContactResponseObject, error) {
	p, err := principal(ctx)
	if err != nil {
		return h.updateContactError(err)
	}

	user, err := h.users.UpdateContact(ctx, p, request.Cin, models.ContactUpdate{
		Email:       request.Body.Email,
		Address:     request.Body.Address,
		PhoneNumber: request.Body.PhoneNumber,
	})
	if err != nil {
		return h.updateContactError(err)
	}

	return api.UpdateContact200JSONResponse(toUser(user)), nil
}

func (h *Handler) updateContactError(err error) (api.UpdateContactResponseObject, error) {
	status, body := h.failure("UpdateContact", err)
	switch status {
	case http.StatusBadRequest:
		return api.UpdateContact400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusUnauthorized:
		return api.UpdateContact401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusForbidden:
		return api.UpdateContact403JSONResponse{ForbiddenJSONResponse: api.ForbiddenJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.UpdateContact404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusConflict:
		return api.UpdateContact409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("UpdateContact", status, body)
	}
	return api.UpdateContact500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}
