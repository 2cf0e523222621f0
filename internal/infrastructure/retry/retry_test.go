package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastPolicy keeps tests quick while still exercising backoff.
var fastPolicy = Policy{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     5 * time.Millisecond,
	Multiplier:   2.0,
	JitterFactor: 0,
}

func TestDo_SuccessOnFirstAttempt(t *testing.T) {
	var attempts int32

	got, err := Do(context.Background(), fastPolicy, func(ctx context.Context) (string, error) {
		atomic.AddInt32(&attempts, 1)
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, int32(1), attempts)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	var attempts int32

	got, err := Do(context.Background(), fastPolicy.WithMaxAttempts(5), func(ctx context.Context) (int, error) {
		count := atomic.AddInt32(&attempts, 1)
		if count < 3 {
			return 0, errors.New("temporary error")
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, int32(3), attempts)
}

func TestDo_MaxAttemptsExceeded(t *testing.T) {
	var attempts int32
	expectedErr := errors.New("persistent error")

	_, err := Do(context.Background(), fastPolicy, func(ctx context.Context) (int, error) {
		atomic.AddInt32(&attempts, 1)
		return 0, expectedErr
	})

	assert.Equal(t, expectedErr, err)
	assert.Equal(t, int32(3), attempts)
}

func TestDo_PermanentErrorStopsImmediately(t *testing.T) {
	var attempts int32
	underlying := errors.New("bad request")

	_, err := Do(context.Background(), fastPolicy, func(ctx context.Context) (int, error) {
		atomic.AddInt32(&attempts, 1)
		return 0, NewPermanent(underlying)
	})

	assert.Equal(t, underlying, err, "permanent marker should be stripped")
	assert.Equal(t, int32(1), attempts)
}

func TestDo_RetryIfPredicate(t *testing.T) {
	var attempts int32
	retryable := errors.New("retryable")
	fatal := errors.New("fatal")

	policy := fastPolicy.WithMaxAttempts(5).WithRetryIf(func(err error) bool {
		return errors.Is(err, retryable)
	})

	_, err := Do(context.Background(), policy, func(ctx context.Context) (int, error) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			return 0, retryable
		}
		return 0, fatal
	})

	assert.Equal(t, fatal, err)
	assert.Equal(t, int32(2), attempts)
}

func TestDo_OnRetryHook(t *testing.T) {
	var seen []int

	policy := fastPolicy.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		seen = append(seen, attempt)
		assert.Error(t, err)
		assert.LessOrEqual(t, wait, fastPolicy.MaxDelay)
	})

	_, _ = Do(context.Background(), policy, func(ctx context.Context) (int, error) {
		return 0, errors.New("fail")
	})

	assert.Equal(t, []int{1, 2}, seen, "hook runs between attempts, not after the last")
}

func TestDo_ContextCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var attempts int32
	_, err := Do(ctx, fastPolicy, func(ctx context.Context) (int, error) {
		atomic.AddInt32(&attempts, 1)
		return 0, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), attempts)
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := fastPolicy.WithInitialDelay(time.Second)
	policy.MaxDelay = time.Second

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := Do(ctx, policy, func(ctx context.Context) (int, error) {
		return 0, errors.New("temporary")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	var attempts int32
	_, _ = Do(context.Background(), Policy{}, func(ctx context.Context) (int, error) {
		atomic.AddInt32(&attempts, 1)
		return 0, errors.New("fail")
	})
	assert.Equal(t, int32(1), attempts)
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, backoff(100*time.Millisecond, time.Second, 0))
	assert.Equal(t, time.Second, backoff(5*time.Second, time.Second, 0))

	for i := 0; i < 50; i++ {
		d := backoff(100*time.Millisecond, time.Second, 0.5)
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
		assert.LessOrEqual(t, d, 150*time.Millisecond)
	}
}

func TestPermanent(t *testing.T) {
	assert.Nil(t, NewPermanent(nil))

	base := errors.New("boom")
	err := NewPermanent(base)
	assert.True(t, IsPermanent(err))
	assert.False(t, SkipPermanent(err))
	assert.True(t, SkipPermanent(base))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "permanent error", (&Permanent{}).Error())
}
