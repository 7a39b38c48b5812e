package domain

// DateBucket groups arrival dates into the ranges the order board offers.
type DateBucket string

const (
	BucketAll       DateBucket = "all"
	BucketToday     DateBucket = "today"
	BucketTomorrow  DateBucket = "tomorrow"
	BucketThisWeek  DateBucket = "this_week"
	BucketNextWeek  DateBucket = "next_week"
	BucketThisMonth DateBucket = "this_month"
)

// Criteria is one snapshot of the order board filters. A zero/nil field
// means that criterion is not constraining; pointer fields are tri-state so
// that false is distinguishable from "don't care".
type Criteria struct {
	Bucket     DateBucket
	Location   string
	Status     *ProcessStatus
	Service    *ServiceType
	Commodity  *Commodity
	Priority   *bool
	InTerminal *bool
	Search     string
}

// Empty reports whether no criterion is active.
func (c Criteria) Empty() bool {
	return (c.Bucket == "" || c.Bucket == BucketAll) &&
		c.Location == "" &&
		c.Status == nil &&
		c.Service == nil &&
		c.Commodity == nil &&
		c.Priority == nil &&
		c.InTerminal == nil &&
		c.Search == ""
}
