package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/easydinar/internal/api"
)

// rateScale bounds the fractional digits of a quoted rate
const rateScale = 6

// GetExchangeRate handles GET /api/v1/exchange-rate
func (h *Handler) GetExchangeRate(
	ctx context.Context,
	request api.GetExchangeRateRequestObject,
) (api.GetExchangeRateResponseObject, error) {
	rate, err := h.exchange.Rate(ctx, request.Params.BaseCurrency, request.Params.TargetCurrency)
	if err != nil {
		status, body := h.failure("GetExchangeRate", err)
		switch status {
		case http.StatusBadRequest:
			return api.GetExchangeRate400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case http.StatusBadGateway:
			return api.GetExchangeRate502JSONResponse{BadGatewayJSONResponse: api.BadGatewayJSONResponse(body)}, nil
		case http.StatusInternalServerError:
		default:
			body = h.undeclared("GetExchangeRate", status, body)
		}
		return api.GetExchangeRate500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.GetExchangeRate200JSONResponse{
		BaseCurrency:   rate.Base,
		TargetCurrency: rate.Target,
		Rate:           rate.Rate.Round(rateScale).String(),
	}, nil
}
