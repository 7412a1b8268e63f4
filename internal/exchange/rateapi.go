// Package exchange fetches currency conversion rates from ExchangeRate-API.
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/benx421/easydinar/internal/config"
	"github.com/benx421/easydinar/internal/models"
)

// ErrNotConfigured is returned when no API key is set
var ErrNotConfigured = errors.New("exchange rate api is not configured")

const maxResponseBody = 1 << 20

// RateAPI queries the v6 "latest" endpoint
type RateAPI struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewRateAPI creates a client for cfg. A nil client uses http.DefaultClient.
func NewRateAPI(cfg config.ExchangeConfig, client *http.Client) *RateAPI {
	if client == nil {
		client = http.DefaultClient
	}
	return &RateAPI{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

type latestResponse struct {
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
}

// Rate returns how many units of target one unit of base buys
func (a *RateAPI) Rate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	if a.apiKey == "" {
		return decimal.Zero, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/%s/latest/%s", a.baseURL, url.PathEscape(a.apiKey), url.PathEscape(base))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	// Errors come back as JSON with result "error", usually with a 4xx status.
	var body latestResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if body.Result != "success" {
		if body.ErrorType == "unsupported-code" {
			return decimal.Zero, fmt.Errorf("%w: %s", models.ErrUnsupportedCurrency, base)
		}
		return decimal.Zero, fmt.Errorf("exchange rate api error (status %d): %s", resp.StatusCode, body.ErrorType)
	}

	rate, ok := body.ConversionRates[target]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", models.ErrUnsupportedCurrency, target)
	}
	return rate, nil
}
