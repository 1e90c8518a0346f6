// Package exchangerate fetches currency conversion rate tables from the
// exchangerate-api.com v6 API.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/codeby-aftab/trip-ai-backend/errors"
	"github.com/codeby-aftab/trip-ai-backend/logger"
	"github.com/codeby-aftab/trip-ai-backend/types"
)

const defaultBaseURL = "https://v6.exchangerate-api.com/v6"

// ClientInterface defines the interface for exchange-rate client operations.
type ClientInterface interface {
	FetchRates(ctx context.Context, baseCurrency string) (types.RateTable, error)
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ratesResponse struct {
	Result          string             `json:"result"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
	ErrorType       string             `json:"error-type"`
}

// FetchRates fetches the table of conversion rates relative to baseCurrency.
// Transport failures, non-2xx statuses and non-"success" bodies all surface
// as RateFetchError; no retry is attempted here.
func (c *Client) FetchRates(ctx context.Context, baseCurrency string) (types.RateTable, error) {
	log := logger.GetLogger()
	log.Debugw("Fetching exchange rates",
		"base", baseCurrency,
		"apiKey", logger.MaskAPIKey(c.apiKey),
	)

	endpoint := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, baseCurrency)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		log.Errorw("Failed to create exchange-rate request", "error", err)
		return nil, apperrors.RateFetchFailed(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorw("Failed to execute exchange-rate request", "error", err)
		return nil, apperrors.RateFetchFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnw("Currency API returned non-OK status", "statusCode", resp.StatusCode)
		return nil, apperrors.RateFetchFailed(fmt.Errorf("currency API request failed with status %d", resp.StatusCode))
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Errorw("Failed to decode exchange-rate response", "error", err)
		return nil, apperrors.RateFetchFailed(err)
	}

	if body.Result != "success" {
		errType := body.ErrorType
		if errType == "" {
			errType = "unknown error"
		}
		log.Warnw("Currency API returned an error result", "errorType", errType)
		return nil, apperrors.RateFetchFailed(fmt.Errorf("currency API returned an error: %s", errType))
	}

	log.Debugw("Exchange rates fetched", "base", body.BaseCode, "rates", len(body.ConversionRates))
	return types.RateTable(body.ConversionRates), nil
}

// StaticRates returns the built-in USD-based snapshot used when no API key
// is configured, so keyless development still produces sensible conversions.
func StaticRates() types.RateTable {
	return types.RateTable{
		"USD": 1,
		"EUR": 0.92,
		"JPY": 157,
		"GBP": 0.78,
		"AUD": 1.5,
		"CAD": 1.37,
		"CHF": 0.89,
		"CNY": 7.25,
		"INR": 83.5,
		"PKR": 278.5,
	}
}
