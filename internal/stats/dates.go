package stats

import "time"

// DateLayout is the wire format for calendar dates. Every history key is a
// date-only string in the user's local calendar, never a UTC instant, so that
// a check-in made late in the evening stays on the day the user saw.
const DateLayout = "2006-01-02"

// DateKey formats a time as a history map key in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey validates and parses a "YYYY-MM-DD" string.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DaysInMonth returns the number of days in the given month, leap years
// included. Day zero of the following month is its last day.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths moves t by a whole number of calendar months, anchoring to day 1
// first so that e.g. Jan 31 + 1 month lands in February instead of rolling
// over into March.
func AddMonths(t time.Time, offset int) time.Time {
	anchor := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return anchor.AddDate(0, offset, 0)
}
