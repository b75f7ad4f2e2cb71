package utils

import "time"

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddCalendarMonths adds n calendar months to a date, clamping to the last
// day of the target month instead of letting the overflow spill into the
// following month (2024-01-31 + 1 month = 2024-02-29, not 2024-03-02).
func AddCalendarMonths(d time.Time, n int) time.Time {
	year, month, day := d.Date()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, d.Location())
	last := LastDayOfMonth(first.Year(), first.Month())
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, d.Location())
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the first and last day of a month as UTC dates.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month, LastDayOfMonth(year, month), 0, 0, 0, 0, time.UTC)
	return start, end
}
