package filter

import (
	"strings"
	"time"

	"github.com/nordport/terminal-orders/internal/domain"
)

// Evaluator filters order lists against board criteria. It owns its clock
// so that date bucketing is testable; all criteria combine with AND
// semantics and input order is preserved.
type Evaluator struct {
	now func() time.Time
}

func New(now func() time.Time) *Evaluator {
	if now == nil {
		now = time.Now
	}
	return &Evaluator{now: now}
}

// Apply returns the orders satisfying every active criterion. The input
// slice is never mutated.
func (e *Evaluator) Apply(orders []domain.Order, c domain.Criteria) []domain.Order {
	if c.Empty() {
		return orders
	}

	now := e.now()
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if e.matches(o, c, now) {
			out = append(out, o)
		}
	}
	return out
}

func (e *Evaluator) matches(o domain.Order, c domain.Criteria, now time.Time) bool {
	if !bucketMatch(o.EtaDate, c.Bucket, now) {
		return false
	}
	if c.Location != "" && o.TerminalID != c.Location {
		return false
	}
	if c.Status != nil && o.Status != *c.Status {
		return false
	}
	if c.Service != nil && o.Service != *c.Service {
		return false
	}
	if c.Commodity != nil && o.Commodity != *c.Commodity {
		return false
	}
	if c.Priority != nil && o.Priority != *c.Priority {
		return false
	}
	if c.InTerminal != nil && o.InTerminal != *c.InTerminal {
		return false
	}
	if c.Search != "" && !searchMatch(o, c.Search) {
		return false
	}
	return true
}

// bucketMatch buckets the order's arrival date. Orders without an arrival
// date only survive the unconstrained buckets.
func bucketMatch(d *domain.Date, bucket domain.DateBucket, now time.Time) bool {
	if bucket == "" || bucket == domain.BucketAll {
		return true
	}
	if d == nil || d.IsZero() {
		return false
	}

	day := d.Time()
	today := domain.DateOf(now).Time()

	switch bucket {
	case domain.BucketToday:
		return day.Equal(today)
	case domain.BucketTomorrow:
		return day.Equal(today.AddDate(0, 0, 1))
	case domain.BucketThisWeek:
		start := startOfWeek(today)
		return !day.Before(start) && day.Before(start.AddDate(0, 0, 7))
	case domain.BucketNextWeek:
		start := startOfWeek(today).AddDate(0, 0, 7)
		return !day.Before(start) && day.Before(start.AddDate(0, 0, 7))
	case domain.BucketThisMonth:
		return day.Year() == today.Year() && day.Month() == today.Month()
	}
	return false
}

// startOfWeek returns the Monday of the week containing day.
func startOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// searchMatch looks for term as a case-insensitive substring in the
// searchable text fields of the order.
func searchMatch(o domain.Order, term string) bool {
	needle := strings.ToLower(term)
	for _, field := range []string{
		o.Reference,
		o.EtaDriver,
		o.EtdDriver,
		o.EtaTruck,
		o.EtaTrailer,
		o.EtdTruck,
		o.EtdTrailer,
	} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
