package hikvision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/metrics"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/resilience"
	"github.com/sony/gobreaker"
)

const maxErrorBody = 512

// APIError is a non-2xx response from the attendance API.
type APIError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: upstream returned status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s: upstream returned status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// Config configures the attendance API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Breaker *resilience.CircuitBreakerConfig
}

// Client performs JSON GETs against the attendance API through a circuit
// breaker. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *resilience.CircuitBreaker
	metrics    *metrics.Metrics
}

// NewClient builds a Client. m may be nil.
func NewClient(cfg Config, m *metrics.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	breakerCfg := resilience.DefaultCircuitBreakerConfig("attendance-api")
	if cfg.Breaker != nil {
		copied := *cfg.Breaker
		breakerCfg = &copied
	}
	// client errors say nothing about upstream health
	breakerCfg.IsSuccessful = func(err error) bool {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr.StatusCode < http.StatusInternalServerError
		}
		return err == nil
	}
	if m != nil {
		breakerCfg.OnStateChange = func(name string, _, to gobreaker.State) {
			m.SetCircuitBreakerState(name, resilience.StateValue(to))
			if to == gobreaker.StateOpen {
				m.RecordCircuitBreakerTrip(name)
			}
		}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: resilience.NewCircuitBreaker(breakerCfg, slog.Default()),
		metrics: m,
	}
}

// BaseURL returns the API root the client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BreakerStatus reports the circuit breaker's state and counts.
func (c *Client) BreakerStatus() resilience.CircuitBreakerStatus {
	return c.breaker.Status()
}

// getJSON fetches path (relative to the base URL) and decodes the body into
// out. Every failure wraps attendance.ErrUpstreamUnavailable.
func (c *Client) getJSON(ctx context.Context, operation, path string, query url.Values, out any) error {
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.do(ctx, operation, path, query, out)
	})
	if err != nil {
		slog.ErrorContext(ctx, "attendance API request failed",
			"operation", operation,
			"path", path,
			"error", err,
		)
		return fmt.Errorf("%w: %w", attendance.ErrUpstreamUnavailable, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, operation, path string, query url.Values, out any) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(operation, "error", start)
		return fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()
	c.record(operation, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}
	return nil
}

func (c *Client) record(operation, status string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordUpstreamRequest(operation, status, time.Since(start))
	}
}

// Ping checks that the API answers. It bypasses the circuit breaker so the
// health probe sees recovery before the breaker does.
func (c *Client) Ping(ctx context.Context) error {
	query := url.Values{}
	query.Set("limit", "1")
	if err := c.do(ctx, "ping", "top-late-employees/", query, nil); err != nil {
		return fmt.Errorf("%w: %w", attendance.ErrUpstreamUnavailable, err)
	}
	return nil
}
