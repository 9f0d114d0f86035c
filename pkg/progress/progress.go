// Package progress formats elapsed time and naive ETA estimates for long
// render and save loops.
package progress

import (
	"fmt"
	"math"
	"time"
)

const (
	secondsPerMinute = 60.0
	secondsPerHour   = 60.0 * 60.0
	secondsPerDay    = 60.0 * 60.0 * 24.0
)

// FormatDuration renders seconds in the largest unit it strictly exceeds:
// days above 86400, hours above 3600, minutes above 60, else seconds.
// Exactly 3600 stays in minutes.
func FormatDuration(seconds float64) string {
	value := seconds
	suffix := "second(s)"
	switch {
	case value > secondsPerDay:
		value /= secondsPerDay
		suffix = "day(s)"
	case value > secondsPerHour:
		value /= secondsPerHour
		suffix = "hour(s)"
	case value > secondsPerMinute:
		value /= secondsPerMinute
		suffix = "minute(s)"
	}
	return fmt.Sprintf("%.2f %s", value, suffix)
}

// Format is FormatDuration for a time.Duration.
func Format(d time.Duration) string {
	return FormatDuration(d.Seconds())
}

// ETA extrapolates the remaining time from the most recent step only.
func ETA(done, total int, last time.Duration) time.Duration {
	remaining := total - done
	if remaining <= 0 {
		return 0
	}
	return time.Duration(remaining) * last
}

// Percent returns done/total as a percentage rounded down to one decimal.
func Percent(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Floor(float64(done)/float64(total)*1000) / 10
}

// Report is one progress observation.
type Report struct {
	Done  int
	Total int
	Last  time.Duration
}

// ETA returns the estimated time remaining.
func (r Report) ETA() time.Duration {
	return ETA(r.Done, r.Total, r.Last)
}

// String renders "<done>/<total> (<pct>%) <duration> | ETA: <duration>".
func (r Report) String() string {
	return fmt.Sprintf("%d/%d (%.1f%%) %s | ETA: %s",
		r.Done, r.Total, Percent(r.Done, r.Total), Format(r.Last), Format(r.ETA()))
}

// FormatProgress is a shorthand for Report{...}.String().
func FormatProgress(done, total int, last time.Duration) string {
	return Report{Done: done, Total: total, Last: last}.String()
}
