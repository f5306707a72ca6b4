package recurrence

import (
	"testing"
	"time"
)

func TestCurrentPeriod(t *testing.T) {
	if got := CurrentPeriod(time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)); got != "2025-06" {
		t.Errorf("expected 2025-06, got %s", got)
	}
	if got := CurrentPeriod(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)); got != "2025-01" {
		t.Errorf("expected zero-padded 2025-01, got %s", got)
	}
}

func TestShouldGenerate(t *testing.T) {
	if !ShouldGenerate(time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("expected true on the first day of the month")
	}
	if ShouldGenerate(time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("expected false on the second day of the month")
	}
}

func TestCheckedToday(t *testing.T) {
	now := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	if !CheckedToday("2025-06-01", now) {
		t.Errorf("expected today's marker to count as checked")
	}
	if CheckedToday("2025-05-31", now) {
		t.Errorf("expected yesterday's marker to not count as checked")
	}
	if CheckedToday("", now) {
		t.Errorf("expected empty marker to not count as checked")
	}
}
