package duration

import (
	"fmt"
	"math"
	"time"
)

// ParseDuration is Parse for callers that want a time.Duration. Input that
// does not match returns ErrNoMatch rather than NaN; sub-nanosecond precision
// is rounded away.
func ParseDuration(s string) (time.Duration, error) {
	ms, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(ms) {
		return 0, fmt.Errorf("%w: %q", ErrNoMatch, s)
	}

	ns := math.Round(ms * float64(time.Millisecond))
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range
	if ns >= float64(math.MaxInt64) || ns < float64(math.MinInt64) {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return time.Duration(ns), nil
}

// FormatDuration renders d the way Format renders its millisecond count.
func FormatDuration(d time.Duration, opts Options) string {
	return Format(float64(d)/float64(time.Millisecond), opts)
}
