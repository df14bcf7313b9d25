package explorer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	httpClient "github.com/Ashutosh-Ahirwar/base-activity/internal/client/http"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/constants"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// RetryExhaustedError is returned when every attempt against a URL failed.
type RetryExhaustedError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("failed to fetch data from %s after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Err
}

// StatusError marks a retryable HTTP status (429 or 5xx).
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP Status %d", e.StatusCode)
}

// Fetcher GETs explorer JSON with exponential-backoff retries. The wait before retry n
// (zero based) is initialDelay * 2^n.
type Fetcher struct {
	client       *httpClient.HTTPClient
	maxAttempts  int
	initialDelay time.Duration
	logger       *zap.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxAttempts sets the total number of attempts per URL.
func WithMaxAttempts(n int) Option {
	return func(f *Fetcher) {
		f.maxAttempts = n
	}
}

// WithInitialDelay sets the wait before the first retry.
func WithInitialDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.initialDelay = d
	}
}

// WithHTTPClient replaces the default no-cache client.
func WithHTTPClient(c *httpClient.HTTPClient) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithLogger sets the logger used for retry warnings.
func WithLogger(l *zap.Logger) Option {
	return func(f *Fetcher) {
		f.logger = l
	}
}

// NewFetcher creates a Fetcher. Without options it makes up to 8 attempts starting at a 1s delay.
func NewFetcher(options ...Option) *Fetcher {
	f := &Fetcher{
		maxAttempts:  constants.DefaultFetchMaxAttempts,
		initialDelay: constants.DefaultFetchInitialDelay,
	}
	for _, option := range options {
		option(f)
	}
	if f.maxAttempts < 1 {
		f.maxAttempts = 1
	}
	f.logger = logger.ForComponent(f.logger, logger.ComponentExplorer)
	if f.client == nil {
		f.client = NewHTTPClient(constants.DefaultFetchTimeout, f.logger)
	}
	return f
}

// NewHTTPClient builds the cache-bypassing client used for explorer requests.
func NewHTTPClient(timeout time.Duration, l *zap.Logger) *httpClient.HTTPClient {
	return httpClient.NewHTTPClient(
		httpClient.WithNoCache(),
		httpClient.WithTimeout(timeout),
		httpClient.WithLogger(l),
		httpClient.WithMetricsCollector(&httpClient.LoggingMetricsCollector{Logger: l}),
		httpClient.WithMiddleware(httpClient.LoggingMiddleware(l)),
	)
}

// Fetch retrieves rawURL. It returns a Success result with the decoded payload, an Empty
// result for non-retryable HTTP statuses, or a Failure result together with a non-nil error
// once all attempts are used up (or ctx is done).
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Result, error) {
	display := httpClient.RedactURL(rawURL)

	if _, err := url.ParseRequestURI(rawURL); err != nil {
		err = fmt.Errorf("invalid explorer URL %s: %w", display, err)
		return Failure(err), err
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = f.initialDelay
	expBackoff.RandomizationFactor = 0
	expBackoff.Multiplier = 2
	expBackoff.MaxInterval = maxWait(f.initialDelay, f.maxAttempts)
	expBackoff.MaxElapsedTime = 0
	expBackoff.Reset()

	policy := backoff.WithContext(
		backoff.WithMaxRetries(expBackoff, uint64(f.maxAttempts-1)),
		ctx,
	)

	attempt := 0
	var result Result
	operation := func() error {
		attempt++
		r, err := f.attempt(ctx, rawURL)
		if err != nil {
			return err
		}
		result = r
		return nil
	}
	notify := func(err error, wait time.Duration) {
		f.logger.Warn("Explorer fetch attempt failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", f.maxAttempts),
			zap.String("url", display),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		var finalErr error
		if ctxErr := ctx.Err(); ctxErr != nil {
			finalErr = fmt.Errorf("fetching %s aborted after %d attempts: %w", display, attempt, ctxErr)
		} else {
			finalErr = &RetryExhaustedError{URL: display, Attempts: attempt, Err: err}
		}
		f.logger.Warn("Explorer fetch failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", f.maxAttempts),
			zap.String("url", display),
			zap.Error(err))
		return Failure(finalErr), finalErr
	}

	return result, nil
}

// attempt performs one request. A returned error means the attempt should be retried.
func (f *Fetcher) attempt(ctx context.Context, rawURL string) (Result, error) {
	resp, err := f.client.Get(ctx, rawURL)
	if err != nil {
		var httpErr *httpClient.HTTPError
		if !errors.As(err, &httpErr) {
			return Result{}, err
		}
		if resp != nil {
			resp.Body.Close()
		}
		if isRetryableStatus(httpErr.StatusCode) {
			return Result{}, &StatusError{StatusCode: httpErr.StatusCode}
		}
		return Empty(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Empty(), nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response body: %w", err)
	}

	payload, err := decodePayload(body)
	if err != nil {
		return Result{}, err
	}
	return Success(payload), nil
}

// maxWait is the longest wait the schedule reaches, capped at a day.
func maxWait(initial time.Duration, attempts int) time.Duration {
	wait := initial
	for i := 1; i < attempts && wait < 24*time.Hour; i++ {
		wait *= 2
	}
	return wait
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
