// File: internal/services/content/retry_test.go
package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), &RetryConfig{MaxAttempts: 3}, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return NewProviderError("op", "transient", errors.New("timeout"))
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), &RetryConfig{MaxAttempts: 2}, func(ctx context.Context) error {
		attempts++
		return NewProviderError("op", "still down", nil)
	})
	require.Error(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRetrySkipsNonRetryableErrors(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), &RetryConfig{MaxAttempts: 5}, func(ctx context.Context) error {
		attempts++
		return &ContentError{Type: ErrTypeConfig, Operation: "op", Message: "missing API key"}
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts, "config errors are not retried")
}

func TestExtractJSON(t *testing.T) {
	raw, ok := extractJSON("Here you go:\n```json\n{\"a\": 1}\n```\nEnjoy!", '{', '}')
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, raw)

	raw, ok = extractJSON(`prose [1, 2, 3] trailing`, '[', ']')
	require.True(t, ok)
	assert.Equal(t, "[1, 2, 3]", raw)

	_, ok = extractJSON("no json here", '{', '}')
	assert.False(t, ok)
}
