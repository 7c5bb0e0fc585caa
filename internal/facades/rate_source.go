package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rova04/gw-exchange-rates/internal/apperrors"
	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// RateSourceClient talks to an exchangerate-api.com style provider over HTTP.
// All quotes are expressed relative to the service's base currency: a quote of
// 0.00021 for EUR means 1 base-unit buys 0.00021 EUR.
type RateSourceClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

type pairResponse struct {
	Result         string          `json:"result"`
	ConversionRate decimal.Decimal `json:"conversion_rate"`
}

type latestResponse struct {
	Result          string                     `json:"result"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// NewRateSourceClient creates a client with a bounded request timeout so a
// hanging provider surfaces as a per-pair failure, never a cycle-wide stall.
func NewRateSourceClient(baseURL, apiKey string, timeout time.Duration) *RateSourceClient {
	return &RateSourceClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// FetchQuote returns how much of the target currency one base-unit buys.
func (c *RateSourceClient) FetchQuote(ctx context.Context, targetCurrency string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/pair/%s/%s", c.baseURL, c.apiKey, models.BaseCurrency, targetCurrency)

	body, err := c.get(ctx, url)
	if err != nil {
		return decimal.Zero, err
	}

	var resp pairResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return decimal.Zero, fmt.Errorf("%w: parsing pair response: %v", apperrors.ErrSourceUnavailable, err)
	}

	if resp.Result != "success" {
		logger.Log.Warnw("rate source returned no quote", "target", targetCurrency, "result", resp.Result)
		return decimal.Zero, fmt.Errorf("%w: %s/%s", apperrors.ErrQuoteNotFound, models.BaseCurrency, targetCurrency)
	}
	if !resp.ConversionRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s/%s", apperrors.ErrQuoteNotFound, models.BaseCurrency, targetCurrency)
	}

	return resp.ConversionRate, nil
}

// FetchLatest returns the provider's full quote table for the base currency.
// Used by the reconciliation cycle to refresh every pair with one call.
func (c *RateSourceClient) FetchLatest(ctx context.Context) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, models.BaseCurrency)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp latestResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: parsing latest response: %v", apperrors.ErrSourceUnavailable, err)
	}

	if resp.Result != "success" || resp.ConversionRates == nil {
		return nil, fmt.Errorf("%w: latest quotes for %s", apperrors.ErrSourceUnavailable, models.BaseCurrency)
	}

	return resp.ConversionRates, nil
}

func (c *RateSourceClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", apperrors.ErrSourceUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Log.Errorw("rate source request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrQuoteNotFound, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", apperrors.ErrSourceUnavailable, err)
	}
	return body, nil
}
