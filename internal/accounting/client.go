package accounting

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	ErrUnauthorized = errors.New("accounting API rejected the API key")
	ErrRateLimited  = errors.New("accounting API rate limit exceeded")
	ErrUnavailable  = errors.New("accounting API unavailable")
	ErrRejected     = errors.New("accounting API rejected the request")
)

const (
	accountsPath = "/public/catalogo-cuentas"
	entriesPath  = "/public/entradas-contables"
)

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, ratePerSecond float64, log *zap.Logger) *Client {
	burst := int(ratePerSecond)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		log:     log,
	}
}

func (c *Client) ListAccounts(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, accountsPath, nil)
}

func (c *Client) ListEntries(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, entriesPath, nil)
}

func (c *Client) CreateEntry(ctx context.Context, entry models.AccountingEntry) (json.RawMessage, error) {
	body, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to encode accounting entry: %w", err)
	}
	return c.do(ctx, http.MethodPost, entriesPath, body)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("accounting request %s %s aborted: %w", method, path, ctxErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request %s %s: %w", method, path, err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("accounting API request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}
	c.log.Debug("accounting API call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if len(bytes.TrimSpace(payload)) == 0 {
			return json.RawMessage("null"), nil
		}
		if !json.Valid(payload) {
			return nil, fmt.Errorf("%w: response is not valid JSON", ErrUnavailable)
		}
		return json.RawMessage(payload), nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, strings.TrimSpace(string(payload)))
	}
}
