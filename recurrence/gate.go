package recurrence

import "time"

// Periods are derived in UTC so that every execution context (cron endpoint,
// in-process scheduler) agrees on where a month begins.

// CurrentPeriod returns the "YYYY-MM" period key of the given instant.
func CurrentPeriod(now time.Time) string {
	return now.UTC().Format("2006-01")
}

// ShouldGenerate reports whether generation should run at all: only on the
// first day of the month. Idempotency within that day is layered on top, by
// the day marker (advisory, per execution context) and by the data-level
// period guard (authoritative).
func ShouldGenerate(now time.Time) bool {
	return now.UTC().Day() == 1
}

// DayMarker returns the "YYYY-MM-DD" marker callers store after a completed
// check. The engine only defines the predicate over it; keeping the marker is
// the caller's business.
func DayMarker(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

// CheckedToday reports whether the last stored marker already covers today,
// meaning the caller can skip invoking the engine.
func CheckedToday(lastMarker string, now time.Time) bool {
	return lastMarker != "" && lastMarker == DayMarker(now)
}
