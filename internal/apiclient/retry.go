// internal/apiclient/retry.go
package apiclient

import (
	"context"
	"time"
)

// IsRetryable reports whether a failed call may be repeated: only connection
// failures where the request never reached the server. A connection reset after
// the request was written is not retried, the server may already have acted on it.
func IsRetryable(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindNetwork && apiErr.NotSent
}

// WithRetry runs operation once plus up to maxRetries more times while it fails
// with a retryable error, waiting delay*(attempt) between tries.
func WithRetry(ctx context.Context, maxRetries int, delay time.Duration, operation func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = operation(); err == nil {
			return nil
		}
		if attempt >= maxRetries || !IsRetryable(err) {
			return err
		}

		timer := time.NewTimer(delay * time.Duration(attempt+1))
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}
}
