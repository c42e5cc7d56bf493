package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrySucceedsAfterRetryableFailures(t *testing.T) {
	attempts := 0
	inner := ClientFunc(func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("call model: rate limited (too many requests, please wait)")
		}
		return "ok", nil
	})

	retry := WithRetry(inner, 3)
	retry.baseDelay = time.Millisecond
	text, err := retry.Generate(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 3, attempts)
}

func TestRetryGivesUpAfterMaxRetries(t *testing.T) {
	attempts := 0
	inner := ClientFunc(func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		attempts++
		return "", errors.New("provider service temporarily unavailable")
	})

	retry := WithRetry(inner, 2)
	retry.baseDelay = time.Millisecond
	_, err := retry.Generate(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 retries")
	assert.Equal(t, 3, attempts)
}

func TestRetryDoesNotRetryNonRetryable(t *testing.T) {
	attempts := 0
	inner := ClientFunc(func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		attempts++
		return "", errors.New("call model: authentication failed (check your API key)")
	})

	retry := WithRetry(inner, 3)
	retry.baseDelay = time.Millisecond
	_, err := retry.Generate(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	inner := ClientFunc(func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		cancel()
		return "", errors.New("connection timed out")
	})

	retry := WithRetry(inner, 5)
	retry.baseDelay = time.Minute
	start := time.Now()
	_, err := retry.Generate(ctx, "s", "u")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
}
