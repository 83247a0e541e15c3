package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"CryptoProphet/internal/domain/models"
	"CryptoProphet/internal/domain/service"
	"CryptoProphet/pkg/cache"
	xhttp "CryptoProphet/pkg/http"
	xlogger "CryptoProphet/pkg/logger"
)

// Client pulls recent hourly price changes from the Gemini public ticker.
type Client struct {
	baseURL  string
	client   *xhttp.Client
	cache    cache.Service
	cacheTTL time.Duration
	logger   *xlogger.Logger
}

// Option configures Client.
type Option func(*Client)

// WithCache enables short-lived caching of upstream payloads. This shields
// the exchange API from request bursts; forecasts themselves are never
// cached.
func WithCache(c cache.Service, ttl time.Duration) Option {
	return func(cl *Client) {
		cl.cache = c
		cl.cacheTTL = ttl
	}
}

// New creates a Gemini ticker client.
func New(baseURL string, timeout time.Duration, logger *xlogger.Logger, opts ...Option) *Client {
	cl := &Client{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// tickerResponse is the subset of the Gemini v2 ticker payload we consume.
// Changes holds hourly close prices, newest first.
type tickerResponse struct {
	Result  string   `json:"result"`
	Reason  string   `json:"reason"`
	Message string   `json:"message"`
	Changes []string `json:"changes"`
}

// HourlyChanges fetches the hourly price-change series for a symbol.
// An error-shaped payload is surfaced as a domain error, never treated as
// empty data. A payload without the changes field is returned as nil and
// rejected downstream.
func (c *Client) HourlyChanges(ctx context.Context, symbol string) ([]string, error) {
	cacheKey := "gemini:changes:" + symbol
	if c.cache != nil && c.cacheTTL > 0 {
		var cached []string
		if err := c.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			c.logger.Warn("gemini cache read failed", xlogger.String("symbol", symbol), xlogger.Error(err))
		}
	}

	resp, err := c.client.SendRequest(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/%s", c.baseURL, symbol),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read gemini response: %w", err)
	}

	var ticker tickerResponse
	if err := json.Unmarshal(body, &ticker); err != nil {
		return nil, models.NewDataFormatError("Invalid response from Gemini")
	}

	// Gemini reports failures in-band with result=error; the HTTP status
	// is not a reliable signal on its own.
	if ticker.Result == "error" {
		msg := ticker.Message
		if msg == "" {
			msg = ticker.Reason
		}
		return nil, models.NewDataFormatError("Error fetching cryptocurrency price data from Gemini: " + msg)
	}

	if c.cache != nil && c.cacheTTL > 0 && ticker.Changes != nil {
		if err := c.cache.Set(ctx, cacheKey, ticker.Changes, c.cacheTTL); err != nil {
			c.logger.Warn("gemini cache write failed", xlogger.String("symbol", symbol), xlogger.Error(err))
		}
	}

	return ticker.Changes, nil
}

var _ service.PriceSource = (*Client)(nil)
