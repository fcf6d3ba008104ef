package internal

import (
	"fmt"
	"log/slog"
	"time"
)

// Retry runs operation up to maxAttempts times with linear backoff between
// attempts and returns the last error when every attempt fails. It is
// generic infrastructure: the chat operations themselves do not retry, and
// store read failures are swallowed into empty results instead of being
// retried here.
func Retry[T any](log *slog.Logger, maxAttempts int, delay time.Duration, operation func() (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := operation()
		if err == nil {
			return result, nil
		}
		lastErr = err
		log.Warn(fmt.Sprintf("Attempt %d/%d failed", attempt, maxAttempts), "err", err)
		if attempt < maxAttempts {
			time.Sleep(delay * time.Duration(attempt))
		}
	}
	return zero, lastErr
}
