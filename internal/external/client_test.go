package external

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaketime/woodsmoke/internal/types"
)

func newClient(retries int) *BaseClient {
	return NewBaseClient(
		&http.Client{Timeout: 5 * time.Second},
		"test-breaker",
		RetryPolicy{MaxRetries: retries, MinWait: time.Millisecond, MaxWait: 10 * time.Millisecond},
		"woodsmoke-test/1.0",
		WithSleepFunc(func(time.Duration) {}),
	)
}

func TestDoInjectsHeaders(t *testing.T) {
	var gotUA, gotTrace string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotTrace = r.Header.Get("X-B3-TraceId")
	}))
	defer srv.Close()

	ctx := types.WithRequestID(context.Background(), "trace-1")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := newClient(0).Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "woodsmoke-test/1.0", gotUA)
	assert.Equal(t, "trace-1", gotTrace)
}

func TestDoRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := newClient(3).Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDoDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	// 4xx (other than 429) passes through for the caller to interpret.
	resp, err := newClient(3).Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDoExhaustedRetriesMapsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	_, err = newClient(2).Do(req)
	require.Error(t, err)

	var appErr *types.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, types.ErrCodeUpstreamUnavailable, appErr.Code)
}

func TestDoRateLimitMapsToRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	_, err = newClient(1).Do(req)
	require.Error(t, err)

	var appErr *types.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, types.ErrCodeUpstreamRateLimited, appErr.Code)
}

func TestDoDoesNotRetryCancelledRequests(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	first := true
	client := NewBaseClient(
		&http.Client{Timeout: 5 * time.Second},
		"cancel-breaker",
		RetryPolicy{MaxRetries: 5, MinWait: time.Millisecond, MaxWait: 10 * time.Millisecond},
		"woodsmoke-test/1.0",
		WithSleepFunc(func(time.Duration) {
			if first {
				first = false
				cancel()
			}
		}),
	)

	_, err = client.Do(req)
	require.Error(t, err)
	assert.LessOrEqual(t, calls.Load(), int32(2))
}

func TestComputeBackoff(t *testing.T) {
	c := newClient(3)
	c.retryPolicy = RetryPolicy{MaxRetries: 3, MinWait: 100 * time.Millisecond, MaxWait: time.Second}

	t.Run("grows with attempts within bounds", func(t *testing.T) {
		for attempt := 0; attempt < 5; attempt++ {
			wait := c.computeBackoff(attempt, nil)
			assert.GreaterOrEqual(t, wait, 100*time.Millisecond)
			assert.LessOrEqual(t, wait, time.Second)
		}
	})

	t.Run("honors Retry-After seconds", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{"Retry-After": []string{"1"}}}
		assert.Equal(t, time.Second, c.computeBackoff(0, resp))
	})

	t.Run("clamps Retry-After to MaxWait", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{"Retry-After": []string{"3600"}}}
		assert.Equal(t, time.Second, c.computeBackoff(0, resp))
	})
}
