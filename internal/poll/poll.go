// Package poll runs an operation a bounded number of times with a fixed delay
// between attempts. The sleeper is injected so tests never wait on a real clock.
package poll

import (
	"context"
	"time"

	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

//go:generate mockgen -destination=mock/mock_sleeper.go -package=mockpoll -source=poll.go

// Sleeper waits for d or until ctx is done
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper sleeps on the wall clock
type RealSleeper struct{}

// Sleep implements Sleeper
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Policy bounds a polling loop
type Policy struct {
	Attempts int
	Delay    time.Duration
	Sleeper  Sleeper
}

// DefaultPolicy is ten attempts two seconds apart
func DefaultPolicy() Policy {
	return Policy{
		Attempts: 10,
		Delay:    2 * time.Second,
		Sleeper:  RealSleeper{},
	}
}

// Do calls fn until it succeeds, returns an error retryable rejects, or the
// attempts run out. It returns the value, the number of attempts made and the
// error. Exhaustion is reported as CodeIndexTimeout wrapping the last error.
func Do[T any](ctx context.Context, policy Policy, fn func(ctx context.Context, attempt int) (T, error), retryable func(error) bool) (T, int, error) {
	var zero T

	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleeper := policy.Sleeper
	if sleeper == nil {
		sleeper = RealSleeper{}
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, attempt - 1, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "polling cancelled")
		}

		value, err := fn(ctx, attempt)
		if err == nil {
			return value, attempt, nil
		}
		if retryable != nil && !retryable(err) {
			return zero, attempt, err
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		if err := sleeper.Sleep(ctx, policy.Delay); err != nil {
			return zero, attempt, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "polling cancelled")
		}
	}

	return zero, attempts, dnderr.WrapWithCode(lastErr, dnderr.CodeIndexTimeout, "gave up waiting").
		WithMeta("attempts", attempts)
}
