package ai

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// RetryClient wraps a Client with exponential backoff retry logic.
type RetryClient struct {
	inner      Client
	maxRetries int
	baseDelay  time.Duration
}

// WithRetry wraps client so retryable failures are attempted up to
// maxRetries additional times.
func WithRetry(client Client, maxRetries int) *RetryClient {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &RetryClient{inner: client, maxRetries: maxRetries, baseDelay: 500 * time.Millisecond}
}

// Generate calls the wrapped client, backing off between retryable failures.
func (r *RetryClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		text, err := r.inner.Generate(ctx, systemPrompt, userPrompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !isRetryable(err) || attempt == r.maxRetries {
			break
		}
		if err := r.backoff(ctx, attempt); err != nil {
			return "", lastErr
		}
	}
	if isRetryable(lastErr) {
		return "", fmt.Errorf("after %d retries: %w", r.maxRetries, lastErr)
	}
	return "", lastErr
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, s := range []string{"rate limited", "temporarily unavailable", "overloaded", "internal server error", "connection refused", "timed out", "deadline exceeded", "closed unexpectedly"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

func (r *RetryClient) backoff(ctx context.Context, attempt int) error {
	delay := time.Duration(float64(r.baseDelay) * math.Pow(2, float64(attempt)))
	if delay > 30*time.Second {
		delay = 30 * time.Second
	}
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
