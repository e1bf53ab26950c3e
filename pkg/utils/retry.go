package utils

import (
	"context"
	"errors"
	"math"
	"time"
)

type RetryConfig struct {
	// MaxRetries is the number of attempts after the first one. Zero disables
	// retries; a negative value selects the default of 3.
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// ShouldRetry classifies an error. A positive delay overrides the backoff schedule.
	// When nil every error is retried.
	ShouldRetry func(err error) (retry bool, delay time.Duration)

	// OnRetry is called before sleeping; attempt starts at 1.
	OnRetry func(attempt int, delay time.Duration, err error)
}

func (cfg RetryConfig) withDefaults() RetryConfig {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Second
	}
	if cfg.ShouldRetry == nil {
		cfg.ShouldRetry = func(error) (bool, time.Duration) { return true, 0 }
	}
	return cfg
}

// WithRetry calls fn until it succeeds, returns a non-retryable error, or retries are exhausted.
// It performs at most MaxRetries+1 calls and returns the last error.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	cfg = cfg.withDefaults()

	for attempt := 0; ; attempt++ {
		res, err := fn(ctx)
		if err == nil {
			return res, nil
		}

		retry, delay := cfg.ShouldRetry(err)
		if !retry || attempt >= cfg.MaxRetries {
			return res, err
		}

		if delay <= 0 {
			delay = backoff(cfg, attempt)
		}
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt+1, delay, err)
		}

		if err := Sleep(ctx, delay); err != nil {
			var zero T
			return zero, err
		}
	}
}

// Retry runs fn with retries on every error except the ones listed in skip.
func Retry(cfg RetryConfig, fn func() error, skip ...error) error {
	shouldRetry := cfg.ShouldRetry
	cfg.ShouldRetry = func(err error) (bool, time.Duration) {
		for _, s := range skip {
			if errors.Is(err, s) {
				return false, 0
			}
		}
		if shouldRetry != nil {
			return shouldRetry(err)
		}
		return true, 0
	}

	_, err := WithRetry(context.Background(), cfg, func(context.Context) (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// Sleep pauses for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func backoff(cfg RetryConfig, attempt int) time.Duration {
	delay := time.Duration(float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt)))
	if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}
	return delay
}
