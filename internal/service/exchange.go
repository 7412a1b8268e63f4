package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/benx421/easydinar/internal/models"
	"github.com/shopspring/decimal"
)

// RateProvider quotes the price of one unit of base in target
type RateProvider interface {
	Rate(ctx context.Context, base, target string) (decimal.Decimal, error)
}

// ExchangeRate is a quoted conversion rate
type ExchangeRate struct {
	Base   string
	Target string
	Rate   decimal.Decimal
}

// ExchangeService looks up currency conversion rates
type ExchangeService struct {
	provider RateProvider
	logger   *slog.Logger
	timeout  time.Duration
}

// NewExchangeService creates a new ExchangeService. Every provider call is
// bounded by timeout.
func NewExchangeService(provider RateProvider, logger *slog.Logger, timeout time.Duration) *ExchangeService {
	return &ExchangeService{provider: provider, logger: logger, timeout: timeout}
}

// Rate returns the conversion rate from base to target. Codes are
// case-insensitive and must differ.
func (s *ExchangeService) Rate(ctx context.Context, base, target string) (*ExchangeRate, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	target = strings.ToUpper(strings.TrimSpace(target))

	var v violations
	v.check("base_currency", ValidateCurrencyCode(base))
	v.check("target_currency", ValidateCurrencyCode(target))
	if len(v) == 0 && base == target {
		v.add("target_currency", "must differ from base_currency")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	rateCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rate, err := s.provider.Rate(rateCtx, base, target)
	if errors.Is(err, models.ErrUnsupportedCurrency) {
		return nil, &ServiceError{
			Kind:    KindValidation,
			Code:    ErrCodeUnsupportedCurrency,
			Message: "currency is not supported",
			Err:     err,
		}
	}
	if err != nil {
		s.logger.Error("failed to fetch exchange rate", "base", base, "target", target, "error", err)
		return nil, newExternalError(ErrCodeExchangeRateProvider, "failed to fetch exchange rate", err)
	}

	return &ExchangeRate{Base: base, Target: target, Rate: rate}, nil
}
