package chat

import (
	"sync/atomic"
	"time"
)

// Throttle is a single-slot request limiter: one shared last-request
// timestamp, advanced with a compare-and-swap so concurrent requests
// cannot both pass the same window.
type Throttle struct {
	minGap int64
	last   atomic.Int64
}

// NewThrottle allows perSec requests per second across the whole process.
// perSec values below 1 are treated as 1.
func NewThrottle(perSec int) *Throttle {
	if perSec < 1 {
		perSec = 1
	}
	return &Throttle{minGap: int64(time.Second) / int64(perSec)}
}

// Allow reports whether a request arriving at now may proceed, and claims
// the slot if so.
func (t *Throttle) Allow(now time.Time) bool {
	n := now.UnixNano()
	for {
		last := t.last.Load()
		if n-last < t.minGap {
			return false
		}
		if t.last.CompareAndSwap(last, n) {
			return true
		}
	}
}
