package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// RetryConfig controls the retry/backoff behavior of a Client.
type RetryConfig struct {
	MaxAttempts int           // total attempts, not extra retries
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	RetryOn4xx  bool
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   1 * time.Second,
		MaxDelay:    30 * time.Second,
	}
}

// StatusError is a non-retryable HTTP status (4xx other than 429).
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
}

// ExhaustedError reports that all attempts for a URL were spent. It wraps
// the last underlying error.
type ExhaustedError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("request to %s exhausted after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// Client is an HTTP client with retry, exponential backoff, 429/5xx
// handling, and optional outbound rate limiting. One instance is
// constructed at startup and injected into every component that needs it.
type Client struct {
	http    *http.Client
	retry   RetryConfig
	limiter *rate.Limiter
	logger  *slog.Logger
}

// New creates a Client around the given http.Client. limiter may be nil
// to disable rate limiting.
func New(httpClient *http.Client, cfg RetryConfig, limiter *rate.Limiter, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultRetryConfig()
	}
	return &Client{
		http:    httpClient,
		retry:   cfg,
		limiter: limiter,
		logger:  logger.With("component", "httpclient"),
	}
}

// Fetch performs a request with retries. The caller owns the response
// body on success. 429 and 5xx responses and transport errors are
// retried with exponential backoff; 429 honors Retry-After. Other 4xx
// fail immediately unless RetryOn4xx is set. A timeout is treated the
// same as any transport error.
func (c *Client) Fetch(ctx context.Context, method, url string) (*http.Response, error) {
	return c.Send(ctx, method, url, nil)
}

// Send is Fetch with a request body. The body is replayed on every
// attempt, so it is taken as a byte slice rather than a reader.
func (c *Client) Send(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt < c.retry.MaxAttempts; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		resp, err := c.doRequest(ctx, method, url, body)
		if err == nil {
			return resp, nil
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) && !retryableStatus(statusErr.StatusCode, c.retry.RetryOn4xx) {
			return nil, err
		}
		lastErr = err

		if attempt == c.retry.MaxAttempts-1 {
			break
		}

		delay := c.retryDelay(attempt, err)
		c.logger.Warn("request failed, retrying",
			"url", url,
			"attempt", attempt+1,
			"delay", delay,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	exhausted := &ExhaustedError{URL: url, Attempts: c.retry.MaxAttempts, Err: lastErr}
	c.logger.Error("request exhausted",
		"url", url,
		"attempts", c.retry.MaxAttempts,
		"error", lastErr,
	)
	return nil, exhausted
}

// GetJSON fetches url and decodes the response body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	resp, err := c.Fetch(ctx, http.MethodGet, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}

// GetText fetches url and returns the body as a string.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	data, err := c.GetBuffer(ctx, url)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetBuffer fetches url and returns the raw body.
func (c *Client) GetBuffer(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.Fetch(ctx, http.MethodGet, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}
	return data, nil
}

// Head issues a HEAD request, retrying like Fetch.
func (c *Client) Head(ctx context.Context, url string) error {
	resp, err := c.Fetch(ctx, http.MethodHead, url)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// retryableError holds a retryable HTTP status together with an optional
// server-requested delay (Retry-After on 429).
type retryableError struct {
	url        string
	statusCode int
	retryAfter time.Duration
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.url, e.statusCode)
}

func (c *Client) doRequest(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain")
	req.Header.Set("User-Agent", "promisync/1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return resp, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		drain(resp)
		return nil, &retryableError{
			url:        url,
			statusCode: resp.StatusCode,
			retryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	case resp.StatusCode >= 500:
		drain(resp)
		return nil, &retryableError{url: url, statusCode: resp.StatusCode}
	default:
		drain(resp)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
}

// retryDelay computes the wait before the next attempt. attempt is
// 0-indexed. A server-requested Retry-After takes precedence over the
// backoff formula.
func (c *Client) retryDelay(attempt int, err error) time.Duration {
	var re *retryableError
	if errors.As(err, &re) && re.retryAfter > 0 {
		return re.retryAfter
	}
	return backoff(attempt, c.retry.BaseDelay, c.retry.MaxDelay)
}

// backoff is min(2^attempt * base, max), attempt 0-indexed.
func backoff(attempt int, base, max time.Duration) time.Duration {
	d := base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= max {
			return max
		}
	}
	if d > max {
		return max
	}
	return d
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func retryableStatus(code int, retryOn4xx bool) bool {
	if code == http.StatusTooManyRequests || code >= 500 {
		return true
	}
	return retryOn4xx && code >= 400
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}
