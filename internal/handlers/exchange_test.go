package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/service"
)

func TestGetExchangeRate(t *testing.T) {
	env := newTestEnv(t)
	env.exchange.On("Rate", mock.Anything, "tnd", "EUR").Return(&service.ExchangeRate{
		Base:   "TND",
		Target: "EUR",
		Rate:   decimal.RequireFromString("0.29512345678"),
	}, nil)

	rec := env.do(http.MethodGet, "/api/v1/exchange-rate?base_currency=tnd&target_currency=EUR", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[api.ExchangeRate](t, rec)
	assert.Equal(t, "TND", body.BaseCurrency)
	assert.Equal(t, "EUR", body.TargetCurrency)
	assert.Equal(t, "0.295123", body.Rate)
}

func TestGetExchangeRate_MissingCurrency(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/v1/exchange-rate?base_currency=TND", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.exchange.AssertNotCalled(t, "Rate")
}

func TestGetExchangeRate_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            *service.ServiceError
		expectedStatus int
		expectedType   any
	}{
		{
			name:           "unsupported currency",
			err:            &service.ServiceError{Kind: service.KindValidation, Code: service.ErrCodeUnsupportedCurrency, Message: "currency is not supported"},
			expectedStatus: http.StatusBadRequest,
			expectedType:   api.GetExchangeRate400JSONResponse{},
		},
		{
			name:           "provider down",
			err:            &service.ServiceError{Kind: service.KindExternalService, Code: service.ErrCodeExchangeRateProvider, Message: "failed to fetch exchange rate"},
			expectedStatus: http.StatusBadGateway,
			expectedType:   api.GetExchangeRate502JSONResponse{},
		},
		{
			name:           "undeclared status falls back to internal error",
			err:            &service.ServiceError{Kind: service.KindNotFound, Code: service.ErrCodeUserNotFound, Message: "user not found"},
			expectedStatus: http.StatusInternalServerError,
			expectedType:   api.GetExchangeRate500JSONResponse{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.exchange.On("Rate", mock.Anything, "TND", "XXX").Return(nil, tt.err)
			h := NewHandler(Services{Exchange: env.exchange}, testLogger())

			resp, err := h.GetExchangeRate(context.Background(), api.GetExchangeRateRequestObject{
				Params: api.GetExchangeRateParams{BaseCurrency: "TND", TargetCurrency: "XXX"},
			})

			require.NoError(t, err)
			assert.IsType(t, tt.expectedType, resp)

			rec := env.do(http.MethodGet, "/api/v1/exchange-rate?base_currency=TND&target_currency=XXX", "", "")
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestGetExchangeRate_UndeclaredStatusHidesMessage(t *testing.T) {
	env := newTestEnv(t)
	env.exchange.On("Rate", mock.Anything, "TND", "EUR").
		Return(nil, &service.ServiceError{Kind: service.KindConflict, Code: service.ErrCodeConcurrentUpdate, Message: "rate changed"})

	rec := env.do(http.MethodGet, "/api/v1/exchange-rate?base_currency=TND&target_currency=EUR", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeJSON[api.Error](t, rec)
	assert.Equal(t, service.ErrCodeInternalError, body.Error)
	assert.NotContains(t, body.Message, "rate changed")
}
