package observability

import (
	"fmt"
	"net/http"
)

// AppendServerTiming adds a Server-Timing metric entry; zero-duration
// entries carry only the description.
func AppendServerTiming(w http.ResponseWriter, name string, durMs float64, desc string) {
	var entry string
	switch {
	case durMs > 0 && desc != "":
		entry = fmt.Sprintf("%s;dur=%.2f;desc=%q", name, durMs, desc)
	case durMs > 0:
		entry = fmt.Sprintf("%s;dur=%.2f", name, durMs)
	case desc != "":
		entry = fmt.Sprintf("%s;desc=%q", name, desc)
	default:
		return
	}
	w.Header().Add("Server-Timing", entry)
}

// SetIfPos sets key to a millisecond value, ignoring non-positive inputs
// so an unset timing never clobbers an earlier one.
func SetIfPos(w http.ResponseWriter, key string, ms float64) {
	if ms <= 0 {
		return
	}
	w.Header().Set(key, fmt.Sprintf("%.2f", ms))
}
