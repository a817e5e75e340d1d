// Package registry provides the OHPM registry search client with
// typed per-page failures, retry, and request metrics.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the OHPM package search endpoint.
const DefaultBaseURL = "https://ohpm.openharmony.cn/ohpmweb/registry/oh-package/openapi/v1/search"

// Prometheus metrics for registry requests.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ohpm_registry_requests_total",
		Help: "Total registry search requests by status",
	}, []string{"status"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ohpm_registry_request_duration_seconds",
		Help:    "Registry search request duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ohpm_registry_errors_total",
		Help: "Total registry errors by class",
	}, []string{"class"})
)

// PageBody is the payload of one search page.
type PageBody struct {
	// Pages is the total page count for the query.
	Pages int `json:"pages"`

	// Total is the total record count for the query.
	Total int `json:"total"`

	// Rows are the raw record payloads in registry order. They stay
	// undecoded here; normalization happens downstream.
	Rows []json.RawMessage `json:"rows"`
}

// searchResponse is the registry's response envelope.
type searchResponse struct {
	Body *PageBody `json:"body"`
}

// Config holds the client configuration.
type Config struct {
	// BaseURL is the search endpoint.
	BaseURL string

	// UserAgent sent with every request.
	UserAgent string

	// Condition is the free-text search filter. Empty matches all
	// packages.
	Condition string

	// Timeout bounds every page request, including retries of a
	// single attempt.
	Timeout time.Duration

	// Retry configuration for transient failures.
	Retry RetryConfig

	// HTTPClient overrides the default transport (tests).
	HTTPClient *http.Client
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: "ohpm-crawler/1.0",
		Condition: "",
		Timeout:   30 * time.Second,
		Retry:     DefaultRetryConfig(),
	}
}

// Client issues paginated search requests against the OHPM registry.
// It is stateless apart from the shared HTTP connection pool and is
// safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// New creates a new registry client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Retry.MaxAttempts < 1 {
		cfg.Retry = DefaultRetryConfig()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
		}
	}

	return &Client{
		httpClient: httpClient,
		config:     cfg,
		logger:     log.With().Str("component", "registry-client").Logger(),
	}, nil
}

// SearchPage fetches a single page of the search listing, sorted by
// popularity. Failures are returned as a *PageError tagged with the
// page number; it never panics across the component boundary.
func (c *Client) SearchPage(ctx context.Context, pageNum, pageSize int) (*PageBody, error) {
	if pageNum < 1 {
		return nil, fmt.Errorf("pageNum must be >= 1, got %d", pageNum)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("pageSize must be > 0, got %d", pageSize)
	}

	start := time.Now()
	defer func() {
		requestDuration.Observe(time.Since(start).Seconds())
	}()

	var body *PageBody
	err := retryWithBackoff(ctx, c.config.Retry, c.logger, func() error {
		var attemptErr error
		body, attemptErr = c.fetchOnce(ctx, pageNum, pageSize)
		return attemptErr
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("page", pageNum).
		Int("rows", len(body.Rows)).
		Int("total_pages", body.Pages).
		Dur("duration", time.Since(start)).
		Msg("Page fetched")

	return body, nil
}

// fetchOnce performs a single request attempt.
func (c *Client) fetchOnce(ctx context.Context, pageNum, pageSize int) (*PageBody, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL, nil)
	if err != nil {
		return nil, &PageError{Page: pageNum, Class: ErrorClassClient, Message: "build request", Err: err}
	}

	q := req.URL.Query()
	q.Set("condition", c.config.Condition)
	q.Set("pageNum", strconv.Itoa(pageNum))
	q.Set("pageSize", strconv.Itoa(pageSize))
	q.Set("sortedType", "popularity")
	q.Set("isHomePage", "false")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		requestsTotal.WithLabelValues("network_error").Inc()
		return nil, &PageError{Page: pageNum, Class: ErrorClassNetwork, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		class := classifyStatus(resp.StatusCode)
		errorsTotal.WithLabelValues(string(class)).Inc()
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &PageError{
			Page:       pageNum,
			StatusCode: resp.StatusCode,
			Class:      class,
			Message:    resp.Status,
		}
	}

	var envelope searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassDecode)).Inc()
		return nil, &PageError{Page: pageNum, Class: ErrorClassDecode, Message: "decode response", Err: err}
	}
	if envelope.Body == nil {
		errorsTotal.WithLabelValues(string(ErrorClassDecode)).Inc()
		return nil, &PageError{Page: pageNum, Class: ErrorClassDecode, Message: "response has no body object"}
	}

	return envelope.Body, nil
}

// Close releases the client's pooled connections. The pool is scoped
// to one collection run; call Close once all page fetches finished or
// were cancelled.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// classifyStatus maps an HTTP status to an error class.
func classifyStatus(status int) ErrorClass {
	switch {
	case status >= 400 && status < 500:
		return ErrorClassClient
	case status >= 500:
		return ErrorClassServer
	default:
		return ErrorClassServer
	}
}
