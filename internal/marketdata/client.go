package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/evangerty1/stocks-pipeline/config"
	"github.com/evangerty1/stocks-pipeline/internal/domain/models"
	"github.com/evangerty1/stocks-pipeline/internal/logger"
)

// Client fetches daily open/close aggregates from the market data provider,
// one request per ticker, and normalizes every possible result into a
// TickerObservation.
//
// Contract: FetchDailyChange never returns an error. Transport failures,
// timeouts and exhausted retries become OutcomeFailed; an empty response for
// the requested day becomes OutcomeNoData (the provider's signal for a
// non-trading day). This is what lets the orchestrator fan out over the
// watchlist with full per-ticker fault isolation.
type Client struct {
	baseURL    string
	apiKey     string
	maxRetries uint64
	retryDelay time.Duration
	http       *http.Client
}

// NewClient builds a Client from the market section of the configuration.
func NewClient(cfg config.MarketConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = time.Second
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		maxRetries: uint64(retries),
		retryDelay: delay,
		http:       &http.Client{Timeout: timeout},
	}
}

// aggsResponse is the provider's daily-aggregates payload for one ticker.
type aggsResponse struct {
	Ticker       string   `json:"ticker"`
	ResultsCount int      `json:"resultsCount"`
	Results      []aggBar `json:"results"`
}

// aggBar is one OHLCV bar.
type aggBar struct {
	Open      float64 `json:"o"`
	High      float64 `json:"h"`
	Low       float64 `json:"l"`
	Close     float64 `json:"c"`
	Volume    float64 `json:"v"`
	Timestamp int64   `json:"t"` // ms
}

// FetchDailyChange requests the single daily bar for symbol on day and
// normalizes it.
//
// Retry policy: 429 and 5xx responses and transport errors are retried with
// exponential backoff up to maxRetries; anything else is terminal. Each
// attempt is bounded by the client timeout.
func (c *Client) FetchDailyChange(ctx context.Context, symbol string, day time.Time) models.TickerObservation {
	obs := models.TickerObservation{Symbol: symbol, Outcome: models.OutcomeFailed}

	d := day.Format("2006-01-02")
	url := fmt.Sprintf("%s/aggs/ticker/%s/range/1/day/%s/%s", c.baseURL, symbol, d, d)

	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.http.Do(req)
		if err != nil {
			// timeouts and connection errors are worth another attempt
			return retry.RetryableError(fmt.Errorf("request %s: %w", symbol, err))
		}
		defer func() { _ = resp.Body.Close() }()

		switch {
		case resp.StatusCode == http.StatusOK:
			var body aggsResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				return fmt.Errorf("decode %s: %w", symbol, err)
			}
			obs = c.normalize(symbol, body)
			return nil
		case resp.StatusCode == http.StatusTooManyRequests:
			return retry.RetryableError(fmt.Errorf("%s: rate limited (429)", symbol))
		case resp.StatusCode >= 500:
			return retry.RetryableError(fmt.Errorf("%s: server error %d", symbol, resp.StatusCode))
		default:
			return fmt.Errorf("%s: unexpected status %d", symbol, resp.StatusCode)
		}
	})
	if err != nil {
		logger.L().Warn().Str("symbol", symbol).Str("day", d).Err(err).Msg("ticker fetch failed")
		return models.TickerObservation{Symbol: symbol, Outcome: models.OutcomeFailed}
	}

	return obs
}

// normalize maps a 200 payload to an observation. An empty result set is the
// provider's "no bar for this day" signal, not an error.
func (c *Client) normalize(symbol string, body aggsResponse) models.TickerObservation {
	if len(body.Results) == 0 {
		logger.L().Info().Str("symbol", symbol).Msg("no results, market may be closed")
		return models.TickerObservation{Symbol: symbol, Outcome: models.OutcomeNoData}
	}

	bar := body.Results[0]
	if bar.Open <= 0 || bar.Close <= 0 {
		// an open of zero makes the percent change undefined
		logger.L().Warn().Str("symbol", symbol).Float64("open", bar.Open).Float64("close", bar.Close).Msg("unusable bar")
		return models.TickerObservation{Symbol: symbol, Outcome: models.OutcomeNoData}
	}

	pct := (bar.Close - bar.Open) / bar.Open * 100
	return models.TickerObservation{
		Symbol:        symbol,
		PercentChange: pct,
		ClosingPrice:  bar.Close,
		Outcome:       models.OutcomeOK,
	}
}
