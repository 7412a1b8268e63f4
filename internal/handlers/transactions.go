package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/models"
)

// ListTransactions handles GET /api/v1/transactions
func (h *Handler) ListTransactions(
	ctx context.Context,
	request api.ListTransactionsRequestObject,
) (api.ListTransactionsResponseObject, error) {
	p, err := principal(ctx)
	if err != nil {
		return h.listTransactionsError(err)
	}

	filter := models.TransactionFilter{
		CIN:           request.Params.Cin,
		AccountNumber: request.Params.AccountNumber,
	}
	if d := request.Params.Date; d != nil {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		filter.Date = &day
	}

	txns, err := h.transactions.List(ctx, p, filter)
	if err != nil {
		return h.listTransactionsError(err)
	}

	return api.ListTransactions200JSONResponse(toTransactions(txns)), nil
}

func (h *Handler) listTransactionsError(err error) (api.ListTransactionsResponseObject, error) {
	status, body := h.failure("ListTransactions", err)
	switch status {
	case http.StatusBadRequest:
		return api.ListTransactions400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusUnauthorized:
		return api.ListTransactions401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusForbidden:
		return api.ListTransactions403JSONResponse{ForbiddenJSONResponse: api.ForbiddenJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.ListTransactions404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("ListTransactions", status, body)
	}
	return api.ListTransactions500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}
