package application

import "time"

// ListStats describes where a listing's time went.
type ListStats struct {
	FetchMs  float64
	FilterMs float64
	Matched  int
	Total    int
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
