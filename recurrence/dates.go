package recurrence

import (
	"time"

	"github.com/fiscaldesk/portal/models"
)

// IsBusinessDay reports whether the date falls outside the weekend.
func IsBusinessDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// AdjustForWeekend resolves a date that falls on a weekend according to the
// rule: postpone walks forward to the next business day, anticipate walks
// backward to the previous one, keep returns the date unchanged.
func AdjustForWeekend(date time.Time, rule models.WeekendRule) time.Time {
	if rule == models.WeekendKeep {
		return date
	}
	for !IsBusinessDay(date) {
		if rule == models.WeekendAnticipate {
			date = date.AddDate(0, 0, -1)
		} else {
			date = date.AddDate(0, 0, 1)
		}
	}
	return date
}

// CalculateDueDate projects a recurrence rule onto a concrete, weekend-adjusted
// due date: the next occurrence on or after the reference date. dueMonth is
// ignored for monthly/custom frequencies and required for annual/quarterly.
// Days exceeding the length of the target month clamp to its last day
// (due day 31 in June means June 30). Only the calendar date of the result is
// significant; it is anchored at midnight UTC.
func CalculateDueDate(dueDay int, dueMonth *int, frequency models.Frequency, rule models.WeekendRule, reference time.Time) (time.Time, error) {
	if dueDay < 1 || dueDay > 31 {
		return time.Time{}, ErrInvalidDueDay
	}
	if dueMonth != nil && (*dueMonth < 1 || *dueMonth > 12) {
		return time.Time{}, ErrInvalidDueMonth
	}

	ref := reference.UTC()
	refDate := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	var due time.Time
	switch frequency {
	case models.FrequencyAnnual:
		if dueMonth == nil {
			return time.Time{}, ErrMissingDueMonth
		}
		due = dateOf(ref.Year(), *dueMonth, dueDay)
		if due.Before(refDate) {
			due = dateOf(ref.Year()+1, *dueMonth, dueDay)
		}
	case models.FrequencyQuarterly:
		if dueMonth == nil {
			return time.Time{}, ErrMissingDueMonth
		}
		year, month := ref.Year(), *dueMonth
		due = dateOf(year, month, dueDay)
		for due.Before(refDate) {
			month += 3
			if month > 12 {
				month -= 12
				year++
			}
			due = dateOf(year, month, dueDay)
		}
	default: // monthly and custom
		year, month := ref.Year(), int(ref.Month())
		due = dateOf(year, month, dueDay)
		if due.Before(refDate) {
			month++
			if month > 12 {
				month = 1
				year++
			}
			due = dateOf(year, month, dueDay)
		}
	}

	return AdjustForWeekend(due, rule), nil
}

// ObligationDueDate is the obligation-shaped entry point of CalculateDueDate.
func ObligationDueDate(o models.Obligation, reference time.Time) (time.Time, error) {
	return CalculateDueDate(o.DueDay, o.DueMonth, o.Frequency, o.WeekendRule, reference)
}

// dateOf builds a UTC date clamping the day to the length of the month.
func dateOf(year, month, day int) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// daysIn returns the number of days in the given month. Day zero of the next
// month normalizes to the last day of this one.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
