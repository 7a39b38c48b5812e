package validation

import (
	"context"
	"net/url"
	"time"

	"github.com/nordport/terminal-orders/internal/cache"
	"github.com/nordport/terminal-orders/internal/domain"
	"github.com/nordport/terminal-orders/internal/observability"

	"go.uber.org/zap"
)

//go:generate mockgen -source internal/validation/unique.go -destination=internal/validation/unique_mock_test.go -package=validation

// DefaultCheckTTL is how long a uniqueness answer stays trustworthy.
const DefaultCheckTTL = 5 * time.Minute

const keySep = "|"

// OrderFinder returns the orders carrying a reference within a terminal.
// Only the ids of the result matter to the checker.
type OrderFinder interface {
	FindByReference(ctx context.Context, reference, terminalID string) ([]domain.Order, error)
}

// ReferenceResult is the outcome of a uniqueness check. Verified is false
// when the answer was assumed rather than confirmed: either the inputs were
// not checkable yet, or the finder failed and the check deliberately failed
// open so a validator outage never blocks a submit.
type ReferenceResult struct {
	Result
	Verified bool `json:"verified"`
}

// Checker answers "is this reference free within this terminal". Answers
// are cached per reference/terminal/excluded-order for the cache TTL, so
// retyping the same reference does not hammer the backend. Invalidation is
// manual: callers clear after a successful save or a terminal switch.
type Checker struct {
	finder  OrderFinder
	cache   *cache.TTL[bool]
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewChecker(finder OrderFinder, checks *cache.TTL[bool], logger *zap.Logger, metrics observability.Metrics) *Checker {
	if metrics == nil {
		metrics = observability.Noop{}
	}
	return &Checker{
		finder:  finder,
		cache:   checks,
		logger:  logger,
		metrics: metrics,
	}
}

// UniqueReference reports whether reference is unused within terminalID,
// ignoring the order identified by excludeOrderID (the one being edited).
// Empty reference or terminal means there is nothing to check yet.
func (c *Checker) UniqueReference(ctx context.Context, reference, terminalID, excludeOrderID string) ReferenceResult {
	if reference == "" || terminalID == "" {
		return ReferenceResult{Result: ok()}
	}

	key := checkKey(reference, terminalID, excludeOrderID)

	t0 := time.Now()
	if unique, hit := c.cache.Get(key); hit {
		c.metrics.IncCacheHit()
		c.metrics.ObserveUniqueCheck("cache", sinceMs(t0))
		return c.result(reference, unique)
	}
	c.metrics.IncCacheMiss()

	matches, err := c.finder.FindByReference(ctx, reference, terminalID)
	if err != nil {
		// Fail open: a broken backend must not lock the user out of the
		// form. The result stays unverified so the policy is auditable.
		c.logger.Warn("reference check failed, allowing submit",
			zap.String("reference", reference),
			zap.String("terminal_id", terminalID),
			zap.Error(err),
		)
		c.metrics.ObserveUniqueCheck("error", sinceMs(t0))
		return ReferenceResult{Result: ok()}
	}

	remaining := 0
	for _, m := range matches {
		if excludeOrderID == "" || m.ID != excludeOrderID {
			remaining++
		}
	}
	unique := remaining == 0

	c.cache.Set(key, unique)
	c.metrics.ObserveUniqueCheck("backend", sinceMs(t0))

	c.logger.Info("reference checked",
		zap.String("reference", reference),
		zap.String("terminal_id", terminalID),
		zap.Bool("unique", unique),
	)
	return c.result(reference, unique)
}

// Invalidate drops every cached answer for the reference/terminal pair,
// whatever order was excluded when it was cached.
func (c *Checker) Invalidate(reference, terminalID string) {
	c.cache.PurgePrefix(url.QueryEscape(reference) + keySep + url.QueryEscape(terminalID) + keySep)
}

// Reset drops the whole check cache.
func (c *Checker) Reset() {
	c.cache.Purge()
}

func (c *Checker) result(reference string, unique bool) ReferenceResult {
	if unique {
		return ReferenceResult{Result: ok(), Verified: true}
	}
	return ReferenceResult{
		Result:   invalid("reference %q is already used at this terminal", reference),
		Verified: true,
	}
}

// checkKey escapes each part so a separator character inside a reference
// cannot collide with another reference/terminal pair.
func checkKey(reference, terminalID, excludeOrderID string) string {
	return url.QueryEscape(reference) + keySep +
		url.QueryEscape(terminalID) + keySep +
		url.QueryEscape(excludeOrderID)
}

func sinceMs(t0 time.Time) float64 {
	return float64(time.Since(t0).Microseconds()) / 1000.0
}
