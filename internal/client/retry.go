package client

import "time"

// RetryPolicy reruns an attempt on retryable failure with a fixed
// escalating delay schedule. The schedule is positional, not a
// multiplied base: attempt N sleeps Delays[N] before attempt N+1, and
// the last delay repeats if attempts outnumber delays.
type RetryPolicy struct {
	MaxRetries int
	Delays     []time.Duration
	Sleep      func(time.Duration)
}

// DefaultDelays is the data-call backoff schedule.
var DefaultDelays = []time.Duration{500 * time.Millisecond, time.Second, 2 * time.Second}

// HealthCheckDelays is the shorter schedule used by the health probe.
var HealthCheckDelays = []time.Duration{500 * time.Millisecond, time.Second}

// Do invokes fn up to MaxRetries+1 times. A nil error stops
// immediately; a non-retryable error is surfaced as-is; a retryable
// error on the final attempt is surfaced after the budget is spent.
func (policy RetryPolicy) Do(isRetryable func(error) bool, fn func(attempt int) error) error {
	sleep := policy.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		lastErr = fn(attempt)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}
		if attempt == policy.MaxRetries {
			break
		}
		sleep(policy.delayFor(attempt))
	}
	return lastErr
}

func (policy RetryPolicy) delayFor(attempt int) time.Duration {
	if len(policy.Delays) == 0 {
		return 0
	}
	if attempt >= len(policy.Delays) {
		return policy.Delays[len(policy.Delays)-1]
	}
	return policy.Delays[attempt]
}
