package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/models"
	"github.com/benx421/easydinar/internal/service"
)

// OpenAccount handles POST /api/v1/accounts
func (h *Handler) OpenAccount(
	ctx context.Context,
	request api.OpenAccountRequestObject,
) (api.OpenAccountResponseObject, error) {
	p, err := principal(ctx)
	if err != nil {
		return h.openAccountError(err)
	}

	account, err := h.ledger.Open(ctx, p, service.OpenAccountInput{
		InitialBalance: request.Body.InitialBalance,
		OwnerCIN:       request.Body.Cin,
		Kind:           models.AccountKind(request.Body.Kind),
	})
	if err != nil {
		return h.openAccountError(err)
	}

	return api.OpenAccount201JSONResponse(toAccount(account)), nil
}

func (h *Handler) openAccountError(err error) (api.OpenAccountResponseObject, error) {
	status, body := h.failure("OpenAccount", err)
	switch status {
	case http.StatusBadRequest:
		return api.OpenAccount400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusUnauthorized:
		return api.OpenAccount401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusForbidden:
		return api.OpenAccount403JSONResponse{ForbiddenJSONResponse: api.ForbiddenJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.OpenAccount404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusConflict:
		return api.OpenAccount409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("OpenAccount", status, body)
	}
	return api.OpenAccount500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}

// ListAccounts handles GET /api/v1/accounts
func (h *Handler) ListAccounts(
	ctx context.Context,
	request api.ListAccountsRequestObject,
) (api.ListAccountsResponseObject, error) {
	p, err := principal(ctx)
	if err != nil {
		return h.listAccountsError(err)
	}

	owner := ""
	if request.Params.Cin != nil {
		owner = *request.Params.Cin
	}
	accounts, err := h.ledger.ListAccounts(ctx, p, owner)
	if err != nil {
		return h.listAccountsError(err)
	}

	return api.ListAccounts200JSONResponse(toAccounts(accounts)), nil
}

func (h *Handler) listAccountsError(err error) (api.ListAccountsResponseObject, error) {
	status, body := h.failure("ListAccounts", err)
	switch status {
	case http.StatusUnauthorized:
		return api.ListAccounts401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusForbidden:
		return api.ListAccounts403JSONResponse{ForbiddenJSONResponse: api.ForbiddenJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.ListAccounts404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("ListAccounts", status, body)
	}
	return api.ListAccounts500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}

// GetAccount handles GET /api/v1/accounts/{account_number}
func (h *Handler) GetAccount(
	ctx context.Context,
	request api.GetAccountRequestObject,
) (api.GetAccountResponseObject, error) {
	p, err := principal(ctx)
	if err != nil {
		return h.getAccountError(err)
	}

	account, err := h.ledger.GetAccount(ctx, p, request.AccountNumber)
	if err != nil {
		return h.getAccountError(err)
	}

	return api.GetAccount200JSONResponse(toAccount(account)), nil
}

func (h *Handler) getAccountError(err error) (api.GetAccountResponseObject, error) {
	status, body := h.failure("GetAccount", err)
	switch status {
	case http.StatusUnauthorized:
		return api.GetAccount401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusForbidden:
		return api.GetAccount403JSONResponse{ForbiddenJSONResponse: api.ForbiddenJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.GetAccount404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("GetAccount", status, body)
	}
	return api.GetAccount500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}

// UpdateAccountKind handles PATCH /api/v1/accounts/{account_number}
func (h *Handler) UpdateAccountKind(
	ctx context.Context,
	request api.UpdateAccountKindRequestObject,
) (api.UpdateAccountKindResponseObject, error) {
	p, err := principal(ctx)
	if err != nil {
		return h.updateAccountKindError(err)
	}

	account, err := h.ledger.UpdateAccountKind(ctx, p, request.AccountNumber, models.AccountKind(request.Body.Kind))
	if err != nil {
		return h.updateAccountKindError(err)
	}

	return api.UpdateAccountKind200JSONResponse(toAccount(account)), nil
}

func (h *Handler) updateAccountKindError(err error) (api.UpdateAccountKindResponseObject, error) {
	status, body := h.failure("UpdateAccountKind", err)
	switch status {
	case http.StatusBadRequest:
		return api.UpdateAccountKind400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusUnauthorized:
		return api.UpdateAccountKind401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusForbidden:
		return api.UpdateAccountKind403JSONResponse{ForbiddenJSONResponse: api.ForbiddenJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.UpdateAccountKind404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("UpdateAccountKind", status, body)
	}
	return api.UpdateAccountKind500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}

// Deposit handles POST /api/v1/deposits
func (h *Handler) Deposit(
	ctx context.Context,
	request api.DepositRequestObject,
) (api.DepositResponseObject, error) {
	p, err := principal(ctx)
	if err != nil {
		return h.depositError(err)
	}

	result, err := h.ledger.Deposit(ctx, p, request.Body.AccountNumber, request.Body.Amount)
	if err != nil {
		return h.depositError(err)
	}

	return api.Deposit200JSONResponse{
		Account:     toAccount(result.Account),
		Transaction: toTransaction(result.Transaction),
	}, nil
}

func (h *Handler) depositError(err error) (api.DepositResponseObject, error) {
	status, body := h.failure("Deposit", err)
	switch status {
	case http.StatusBadRequest:
		return api.Deposit400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusUnauthorized:
		return api.Deposit401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusForbidden:
		return api.Deposit403JSONResponse{ForbiddenJSONResponse: api.ForbiddenJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.Deposit404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("Deposit", status, body)
	}
	return api.Deposit500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}

// Withdraw handles POST /api/v1/withdrawals
func (h *Handler) Withdraw(
	ctx context.Context,
	request api.WithdrawRequestObject,
) (api.WithdrawResponseObject, error) {
	p, err := principal(ctx)
	if err != nil {
		return h.withdrawError(err)
	}

	result, err := h.ledger.Withdraw(ctx, p, request.Body.AccountNumber, request.Body.Amount)
	if err != nil {
		return h.withdrawError(err)
	}

	return api.Withdraw200JSONResponse{
		Account:     toAccount(result.Account),
		Transaction: toTransaction(result.Transaction),
	}, nil
}

func (h *Handler) withdrawError(err error) (api.WithdrawResponseObject, error) {
	status, body := h.failure("Withdraw", err)
	switch status {
	case http.StatusBadRequest:
		return api.Withdraw400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
	case http.StatusUnauthorized:
		return api.Withdraw401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse(body)}, nil
	case http.StatusPaymentRequired:
		return api.Withdraw402JSONResponse{PaymentRequiredJSONResponse: api.PaymentRequiredJSONResponse(body)}, nil
	case http.StatusForbidden:
		return api.Withdraw403JSONResponse{ForbiddenJSONResponse: api.ForbiddenJSONResponse(body)}, nil
	case http.StatusNotFound:
		return api.Withdraw404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusInternalServerError:
	default:
		body = h.undeclared("Withdraw", status, body)
	}
	return api.Withdraw500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
}
