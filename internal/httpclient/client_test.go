package httpclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(cfg RetryConfig) *Client {
	return New(&http.Client{Timeout: 5 * time.Second}, cfg, nil, testLogger())
}

func TestFetch_RecoversFromServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := testClient(RetryConfig{MaxAttempts: 3, BaseDelay: 20 * time.Millisecond, MaxDelay: time.Second})

	start := time.Now()
	resp, err := c.Fetch(context.Background(), http.MethodGet, srv.URL)
	elapsed := time.Since(start)

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, int32(3), calls.Load())
	// two backoff waits: base*1 + base*2
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
}

func TestFetch_FailsFastOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient(RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: time.Second})

	_, err := c.Fetch(context.Background(), http.MethodGet, srv.URL)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_RetryOn4xxOptIn(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := testClient(RetryConfig{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: time.Second, RetryOn4xx: true})

	resp, err := c.Fetch(context.Background(), http.MethodGet, srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_ExhaustionWrapsLastError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: time.Second})

	_, err := c.Fetch(context.Background(), http.MethodGet, srv.URL)

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
	assert.Equal(t, srv.URL, exhausted.URL)
	assert.Contains(t, exhausted.Error(), "500")
}

func TestFetch_HonorsRetryAfter(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	// BaseDelay far below the Retry-After value to show the header wins.
	c := testClient(RetryConfig{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: time.Minute})

	start := time.Now()
	resp, err := c.Fetch(context.Background(), http.MethodGet, srv.URL)
	elapsed := time.Since(start)

	require.NoError(t, err)
	resp.Body.Close()
	assert.GreaterOrEqual(t, elapsed, time.Second)
}

func TestFetch_ContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := testClient(RetryConfig{MaxAttempts: 3, BaseDelay: time.Minute, MaxDelay: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Fetch(ctx, http.MethodGet, srv.URL)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBackoff_MonotonicAndCapped(t *testing.T) {
	base := 100 * time.Millisecond
	max := time.Second

	prev := time.Duration(0)
	for attempt := 0; attempt < 10; attempt++ {
		d := backoff(attempt, base, max)
		assert.GreaterOrEqual(t, d, prev, "attempt %d", attempt)
		assert.LessOrEqual(t, d, max, "attempt %d", attempt)
		prev = d
	}

	assert.Equal(t, base, backoff(0, base, max))
	assert.Equal(t, 2*base, backoff(1, base, max))
	assert.Equal(t, max, backoff(6, base, max))
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 2*time.Second, parseRetryAfter("2"))
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, time.Duration(0), parseRetryAfter("-1"))
	// HTTP-date form falls back to the backoff formula
	assert.Equal(t, time.Duration(0), parseRetryAfter("Wed, 21 Oct 2026 07:28:00 GMT"))
}

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"mug"}`))
	}))
	defer srv.Close()

	c := testClient(DefaultRetryConfig())

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, c.GetJSON(context.Background(), srv.URL, &out))
	assert.Equal(t, "mug", out.Name)
}

func TestHead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(DefaultRetryConfig())
	require.NoError(t, c.Head(context.Background(), srv.URL))
}

func TestExhaustedError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &ExhaustedError{URL: "http://x", Attempts: 3, Err: inner}
	assert.ErrorIs(t, err, inner)
}
