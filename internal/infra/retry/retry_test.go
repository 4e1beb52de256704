package retry

import (
	"context"
	"testing"
	"time"

	"workdesk/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	return Config{MaxAttempts: attempts, InitialBackoff: time.Millisecond, MaxBackoff: 5 * time.Millisecond}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), nil, "close-account", nil, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsAtAttemptCap(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), nil, "close-account", nil, func(ctx context.Context) error {
		calls++

		return errors.New("still broken")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestDo_NonRetryableErrorStopsImmediately(t *testing.T) {
	permanent := errors.New("validation failed")
	calls := 0
	err := Do(context.Background(), fastConfig(3), nil, "close-account",
		func(err error) bool { return !errors.Is(err, permanent) },
		func(ctx context.Context) error {
			calls++

			return permanent
		})

	require.Error(t, err)
	assert.True(t, errors.Is(err, permanent))
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancellationWins(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, fastConfig(3), nil, "close-account", nil, func(ctx context.Context) error {
		calls++

		return errors.New("transient")
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, calls)
}

func TestBackoffFor_IncrementalAndCapped(t *testing.T) {
	cfg := Config{MaxAttempts: 5, InitialBackoff: 100 * time.Millisecond, MaxBackoff: 250 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, backoffFor(1, cfg))
	assert.Equal(t, 200*time.Millisecond, backoffFor(2, cfg))
	assert.Equal(t, 250*time.Millisecond, backoffFor(3, cfg))
}
