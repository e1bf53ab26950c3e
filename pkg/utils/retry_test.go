package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errRateLimited = errors.New("rate limited")
	errFatal       = errors.New("fatal")
)

func rateLimitOnly(err error) (bool, time.Duration) {
	return errors.Is(err, errRateLimited), 0
}

func TestWithRetry(t *testing.T) {
	testCases := []struct {
		name      string
		results   []error
		wantCalls int
		wantErr   error
	}{
		{
			name:      "success on first call",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "rate limited then success",
			results:   []error{errRateLimited, errRateLimited, nil},
			wantCalls: 3,
		},
		{
			name:      "always rate limited stops after max retries",
			results:   []error{errRateLimited, errRateLimited, errRateLimited, errRateLimited, errRateLimited},
			wantCalls: 4,
			wantErr:   errRateLimited,
		},
		{
			name:      "non retryable error propagates immediately",
			results:   []error{errFatal, nil},
			wantCalls: 1,
			wantErr:   errFatal,
		},
		{
			name:      "rate limited then fatal",
			results:   []error{errRateLimited, errFatal, nil},
			wantCalls: 2,
			wantErr:   errFatal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			cfg := RetryConfig{
				MaxRetries:   3,
				InitialDelay: time.Millisecond,
				ShouldRetry:  rateLimitOnly,
			}

			got, err := WithRetry(context.Background(), cfg, func(context.Context) (int, error) {
				err := tc.results[calls]
				calls++
				return calls, err
			})

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCalls, got)
		})
	}
}

func TestWithRetry_Delays(t *testing.T) {
	var delays []time.Duration
	cfg := RetryConfig{
		MaxRetries:   3,
		InitialDelay: time.Millisecond,
		ShouldRetry:  rateLimitOnly,
		OnRetry: func(_ int, delay time.Duration, _ error) {
			delays = append(delays, delay)
		},
	}

	_, err := WithRetry(context.Background(), cfg, func(context.Context) (struct{}, error) {
		return struct{}{}, errRateLimited
	})

	assert.ErrorIs(t, err, errRateLimited)
	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond}, delays)
}

func TestWithRetry_ServerSuggestedDelay(t *testing.T) {
	var delays []time.Duration
	cfg := RetryConfig{
		MaxRetries:   1,
		InitialDelay: time.Hour,
		ShouldRetry: func(err error) (bool, time.Duration) {
			return true, 3 * time.Millisecond
		},
		OnRetry: func(_ int, delay time.Duration, _ error) {
			delays = append(delays, delay)
		},
	}

	calls := 0
	_, err := WithRetry(context.Background(), cfg, func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errRateLimited
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, []time.Duration{3 * time.Millisecond}, delays)
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := RetryConfig{
		MaxRetries:   3,
		InitialDelay: time.Hour,
		ShouldRetry:  rateLimitOnly,
		OnRetry:      func(int, time.Duration, error) { cancel() },
	}

	calls := 0
	_, err := WithRetry(ctx, cfg, func(context.Context) (int, error) {
		calls++
		return 0, errRateLimited
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetry_SkipsListedErrors(t *testing.T) {
	notFound := errors.New("not found")
	calls := 0

	err := Retry(RetryConfig{MaxRetries: 5, InitialDelay: time.Millisecond}, func() error {
		calls++
		return notFound
	}, notFound)

	assert.ErrorIs(t, err, notFound)
	assert.Equal(t, 1, calls)
}

func TestRetry_RetriesTransientErrors(t *testing.T) {
	calls := 0

	err := Retry(RetryConfig{MaxRetries: 5, InitialDelay: time.Millisecond}, func() error {
		calls++
		if calls < 3 {
			return errors.New("temporary")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_MaxRetries(t *testing.T) {
	testCases := []struct {
		name       string
		maxRetries int
		wantCalls  int
	}{
		{name: "zero disables retries", maxRetries: 0, wantCalls: 1},
		{name: "negative uses default", maxRetries: -1, wantCalls: 4},
		{name: "explicit", maxRetries: 2, wantCalls: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			_, err := WithRetry(context.Background(), RetryConfig{
				MaxRetries:   tc.maxRetries,
				InitialDelay: time.Microsecond,
			}, func(context.Context) (int, error) {
				calls++
				return 0, errRateLimited
			})

			assert.ErrorIs(t, err, errRateLimited)
			assert.Equal(t, tc.wantCalls, calls)
		})
	}
}
