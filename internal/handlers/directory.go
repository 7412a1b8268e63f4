package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/models"
)

// ListBranchesAndAtms handles GET /api/v1/branches-atms
func (h *Handler) ListBranchesAndAtms(
	ctx context.Context,
	request api.ListBranchesAndAtmsRequestObject,
) (api.ListBranchesAndAtmsResponseObject, error) {
	var locationType *models.LocationType
	if request.Params.Type != nil {
		t := models.LocationType(*request.Params.Type)
		locationType = &t
	}

	locations, err := h.directory.List(ctx, locationType)
	if err != nil {
		status, body := h.failure("ListBranchesAndAtms", err)
		if status == http.StatusBadRequest {
			return api.ListBranchesAndAtms400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		}
		if status != http.StatusInternalServerError {
			body = h.undeclared("ListBranchesAndAtms", status, body)
		}
		return api.ListBranchesAndAtms500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.ListBranchesAndAtms200JSONResponse(toLocations(locations)), nil
}
