package http

import (
	"errors"
	"net/http"
	"slices"
	"time"
)

// BackoffConfig describes how failed requests are retried.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	// RetryOnStatus lists the statuses worth another attempt. Empty means 429 and any 5xx.
	RetryOnStatus []int
}

// NewBackoffConfig returns an exponential backoff starting at initial and doubling up to max.
func NewBackoffConfig(maxRetries int, initial, max time.Duration) *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      maxRetries,
		InitialInterval: initial,
		MaxInterval:     max,
		Multiplier:      2,
	}
}

func (b *BackoffConfig) shouldRetry(status int, err error) bool {
	if b == nil || err == nil {
		return false
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		// transport failure
		return status == 0
	}
	if len(b.RetryOnStatus) > 0 {
		return slices.Contains(b.RetryOnStatus, status)
	}
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// interval returns the wait before retry number attempt+1.
func (b *BackoffConfig) interval(attempt int) time.Duration {
	wait := b.InitialInterval
	if wait <= 0 {
		wait = 100 * time.Millisecond
	}
	multiplier := b.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	for i := 0; i < attempt; i++ {
		wait = time.Duration(float64(wait) * multiplier)
		if b.MaxInterval > 0 && wait >= b.MaxInterval {
			return b.MaxInterval
		}
	}
	if b.MaxInterval > 0 && wait > b.MaxInterval {
		return b.MaxInterval
	}
	return wait
}
