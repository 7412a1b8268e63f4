package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/eligibility"
)

// ScoreEligibility handles POST /api/v1/loan-eligibility
func (h *Handler) ScoreEligibility(
	_ context.Context,
	request api.ScoreEligibilityRequestObject,
) (api.ScoreEligibilityResponseObject, error) {
	result, err := eligibility.Score(eligibility.Input{
		Income:           request.Body.Income,
		Debt:             request.Body.Debt,
		Savings:          request.Body.Savings,
		EmploymentStatus: request.Body.EmploymentStatus,
	})
	if err != nil {
		status, body := h.failure("ScoreEligibility", err)
		if status == http.StatusBadRequest {
			return api.ScoreEligibility400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		}
		if status != http.StatusInternalServerError {
			body = h.undeclared("ScoreEligibility", status, body)
		}
		return api.ScoreEligibility500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	links := make([]api.LenderLink, 0, len(result.Links))
	for _, l := range result.Links {
		links = append(links, api.LenderLink{Bank: l.Bank, Url: l.URL})
	}
	return api.ScoreEligibility200JSONResponse{
		Score:           result.Score,
		LoanEligibility: string(result.Tier),
		Recommendations: result.Recommendation,
		LoanLinks:       links,
	}, nil
}
