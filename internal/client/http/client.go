package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"

	"go.uber.org/zap"
)

// ClientOption represents a function that can modify the HTTP client
type ClientOption func(*HTTPClient)

// Middleware represents a function that wraps an http.RoundTripper
type Middleware func(http.RoundTripper) http.RoundTripper

// HTTPError represents an error returned from an HTTP request
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d %s: %s", e.Method, e.URL, e.StatusCode, e.Status, e.Body)
}

// HTTPClient is a thin HTTP client with default headers, transport middleware and metrics hooks.
// It performs exactly one round trip per call; retry policy belongs to the caller.
type HTTPClient struct {
	httpClient     *http.Client
	defaultHeaders map[string]string
	middlewares    []Middleware
	metrics        MetricsCollector
	logger         *zap.Logger
}

// MetricsCollector defines an interface for collecting metrics
type MetricsCollector interface {
	RecordRequestDuration(method, path string, statusCode int, duration time.Duration)
	RecordRequestCount(method, path string, statusCode int)
	RecordRequestError(method, path string)
}

// NewHTTPClient creates a new HTTPClient with the given options
func NewHTTPClient(options ...ClientOption) *HTTPClient {
	client := &HTTPClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		defaultHeaders: map[string]string{
			"Accept": "application/json",
		},
		metrics: &NoopMetricsCollector{},
	}

	for _, option := range options {
		option(client)
	}

	if client.logger == nil {
		client.logger = logger.Log
	}

	// Apply middlewares in reverse order so the first one is outermost
	if len(client.middlewares) > 0 {
		transport := client.httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		for i := len(client.middlewares) - 1; i >= 0; i-- {
			transport = client.middlewares[i](transport)
		}
		client.httpClient.Transport = transport
	}

	return client
}

// WithNoCache makes every request bypass intermediary caches.
func WithNoCache() ClientOption {
	return func(c *HTTPClient) {
		c.defaultHeaders["Cache-Control"] = "no-store"
		c.defaultHeaders["Pragma"] = "no-cache"
	}
}

// WithTimeout sets the timeout for all requests
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithMiddleware adds a middleware to the client
func WithMiddleware(middleware Middleware) ClientOption {
	return func(c *HTTPClient) {
		c.middlewares = append(c.middlewares, middleware)
	}
}

// WithMetricsCollector sets the metrics collector
func WithMetricsCollector(collector MetricsCollector) ClientOption {
	return func(c *HTTPClient) {
		c.metrics = collector
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *HTTPClient) {
		c.logger = l
	}
}

// Get performs an HTTP GET request
func (c *HTTPClient) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	return c.DoRequest(ctx, http.MethodGet, rawURL)
}

// DoRequest performs a single request. For status codes >= 400 the response is returned
// together with an *HTTPError whose body has been buffered; the response body stays readable.
// URLs in returned errors have their API keys redacted.
func (c *HTTPClient) DoRequest(ctx context.Context, method, rawURL string) (*http.Response, error) {
	start := time.Now()

	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("invalid request URL %s", RedactURL(rawURL))
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.defaultHeaders {
		req.Header.Set(key, value)
	}

	path := req.URL.Path
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	c.metrics.RecordRequestDuration(method, path, statusCode, duration)
	c.metrics.RecordRequestCount(method, path, statusCode)

	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = RedactURL(urlErr.URL)
		}
		c.metrics.RecordRequestError(method, path)
		c.logger.Debug("HTTP request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
			zap.Duration("duration", duration))
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.metrics.RecordRequestError(method, path)

		var bodyBytes []byte
		if resp.Body != nil {
			bodyBytes, _ = io.ReadAll(resp.Body)
			resp.Body.Close()
			resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}

		return resp, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        RedactURL(req.URL.String()),
			Method:     method,
			Body:       string(bodyBytes),
		}
	}

	return resp, nil
}

// RedactURL masks API key query parameters and userinfo passwords so a URL can be
// logged and returned in errors.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<unparsable URL>"
	}
	q := u.Query()
	changed := false
	for key := range q {
		switch strings.ToLower(key) {
		case "apikey", "api_key", "key", "token":
			q.Set(key, "REDACTED")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.Redacted()
}

// NoopMetricsCollector is a metrics collector that does nothing
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
}
func (n *NoopMetricsCollector) RecordRequestCount(method, path string, statusCode int) {}
func (n *NoopMetricsCollector) RecordRequestError(method, path string)                 {}

// LoggingMetricsCollector reports request metrics as debug log entries.
type LoggingMetricsCollector struct {
	Logger *zap.Logger
}

func (l *LoggingMetricsCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	l.Logger.Debug("http request duration",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", statusCode),
		zap.Duration("duration", duration))
}

func (l *LoggingMetricsCollector) RecordRequestCount(method, path string, statusCode int) {}

func (l *LoggingMetricsCollector) RecordRequestError(method, path string) {
	l.Logger.Debug("http request error", zap.String("method", method), zap.String("path", path))
}

// LoggingMiddleware creates a middleware that logs requests and responses
func LoggingMiddleware(l *zap.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &loggingRoundTripper{next: next, logger: l}
	}
}

type loggingRoundTripper struct {
	next   http.RoundTripper
	logger *zap.Logger
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	// Explorer URLs carry API keys in the query string, so only the path is logged.
	l.logger.Debug("HTTP request started",
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.String("path", req.URL.Path))

	resp, err := l.next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		l.logger.Debug("HTTP round trip failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
			zap.Duration("duration", duration))
		return resp, err
	}

	l.logger.Debug("HTTP response received",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}
