package retry

import (
	"context"
	"math/rand"
	"time"

	"github.com/nordport/terminal-orders/internal/config"
)

// Do runs fn until it succeeds, retrying with exponential backoff and
// jitter per the policy. The last error is returned when attempts run out;
// ctx cancellation aborts the wait between attempts.
func Do(ctx context.Context, policy config.Retry, fn func() error) error {
	backoff := policy.Base
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	var err error
	for attempt := 0; attempt < policy.Attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		delay := backoff
		if policy.JitterFactor > 0 {
			delay = time.Duration(float64(delay) * (1 + policy.JitterFactor*(2*r.Float64()-1)))
		}
		if policy.Max > 0 && delay > policy.Max {
			delay = policy.Max
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}

		backoff *= 2
		if policy.Max > 0 && backoff > policy.Max {
			backoff = policy.Max
		}
	}
	return err
}
