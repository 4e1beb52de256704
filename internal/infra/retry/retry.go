// Package retry provides a small bounded-retry helper with incremental
// backoff, used for calls to downstream services that fail transiently.
package retry

import (
	"context"
	"log/slog"
	"time"

	"workdesk/internal/errors"
)

// Config holds retry strategy configuration.
type Config struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultConfig matches the historical client behavior: three attempts with
// incremental backoff.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     10 * time.Second,
	}
}

// Do runs fn until it succeeds, the error is not retryable, the attempt cap
// is reached, or ctx is done. retryable decides per error whether another
// attempt makes sense; a nil retryable retries every error.
func Do(ctx context.Context, cfg Config, logger *slog.Logger, op string, retryable func(error) bool, fn func(ctx context.Context) error) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if retryable != nil && !retryable(lastErr) {
			return lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		backoff := backoffFor(attempt, cfg)
		if logger != nil {
			logger.Warn("operation failed, retrying",
				slog.String("operation", op),
				slog.Int("attempt", attempt),
				slog.Int("maxAttempts", cfg.MaxAttempts),
				slog.Duration("backoff", backoff),
				slog.String("error", lastErr.Error()),
			)
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(backoff):
		}
	}

	return errors.Wrapf(lastErr, "operation %q failed after %d attempts", op, cfg.MaxAttempts)
}

// backoffFor grows the delay linearly with the attempt number, capped at
// MaxBackoff. Incremental rather than exponential: the historical client
// waited attempt*initial between tries.
func backoffFor(attempt int, cfg Config) time.Duration {
	backoff := time.Duration(attempt) * cfg.InitialBackoff
	if cfg.MaxBackoff > 0 && backoff > cfg.MaxBackoff {
		backoff = cfg.MaxBackoff
	}

	return backoff
}
