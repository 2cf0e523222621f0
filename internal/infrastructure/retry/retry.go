// Package retry provides a generic retry mechanism with exponential backoff
// for calls to the upstream flight-data provider.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Policy holds the retry configuration options.
type Policy struct {
	// MaxAttempts is the maximum number of attempts (including the first one).
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay grows after each retry.
	Multiplier float64

	// JitterFactor adds up to this fraction of the delay as random jitter (0.0 to 1.0).
	JitterFactor float64

	// RetryIf decides whether an error is worth another attempt.
	// If nil, every error except Permanent ones is retried.
	RetryIf func(error) bool

	// OnRetry, when set, is called before sleeping ahead of the next attempt.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// DefaultPolicy provides sensible defaults for retry behavior.
var DefaultPolicy = Policy{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
}

// ProviderPolicy is tuned for the rate-limited flight search API.
var ProviderPolicy = Policy{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// Do executes fn with retry logic.
// It returns the first successful result, or the last error once attempts run out.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	retryIf := p.RetryIf
	if retryIf == nil {
		retryIf = SkipPermanent
	}

	var result T
	var lastErr error
	delay := p.InitialDelay

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn(ctx)
		if lastErr == nil {
			return result, nil
		}

		if !retryIf(lastErr) || attempt == p.MaxAttempts {
			break
		}

		wait := backoff(delay, p.MaxDelay, p.JitterFactor)
		if p.OnRetry != nil {
			p.OnRetry(attempt, lastErr, wait)
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * p.Multiplier)
	}

	return result, unwrapPermanent(lastErr)
}

// backoff computes the sleep duration with jitter and max cap.
func backoff(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	jitter := time.Duration(rand.Float64() * float64(delay) * jitterFactor)
	sleep := delay + jitter
	if maxDelay > 0 && sleep > maxDelay {
		sleep = maxDelay
	}
	return sleep
}

// Permanent wraps an error to indicate it should not be retried.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent marks err as permanent (non-retryable).
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent checks if an error is permanent.
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that skips permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}

// unwrapPermanent strips a top-level Permanent marker so callers see the real error.
func unwrapPermanent(err error) error {
	var permanent *Permanent
	if errors.As(err, &permanent) && permanent.Err != nil {
		return permanent.Err
	}
	return err
}

// WithMaxAttempts returns a copy of the policy with the given max attempts.
func (p Policy) WithMaxAttempts(n int) Policy {
	p.MaxAttempts = n
	return p
}

// WithInitialDelay returns a copy of the policy with the given initial delay.
func (p Policy) WithInitialDelay(d time.Duration) Policy {
	p.InitialDelay = d
	return p
}

// WithRetryIf returns a copy of the policy with the given RetryIf predicate.
func (p Policy) WithRetryIf(fn func(error) bool) Policy {
	p.RetryIf = fn
	return p
}

// WithOnRetry returns a copy of the policy with the given retry hook.
func (p Policy) WithOnRetry(fn func(attempt int, err error, wait time.Duration)) Policy {
	p.OnRetry = fn
	return p
}
