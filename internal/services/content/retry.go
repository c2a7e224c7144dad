// File: internal/services/content/retry.go
package content

import (
	"context"
	"errors"
	"time"
)

// RetryConfig defines simple retry behavior for provider calls.
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
}

// RetryWithBackoff executes a function with simple retry logic. Config and
// validation failures are not retried; they cannot heal on their own.
func RetryWithBackoff(ctx context.Context, config *RetryConfig, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		lastErr = err

		var contentErr *ContentError
		if errors.As(err, &contentErr) {
			if contentErr.Type == ErrTypeConfig || contentErr.Type == ErrTypeValidation {
				return err
			}
		}

		// Don't wait after the last attempt.
		if attempt < config.MaxAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(config.Delay):
			}
		}
	}

	return lastErr
}
