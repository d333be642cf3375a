package stats

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestAddMonthsClampsToFirstDay(t *testing.T) {
	jan31 := time.Date(2024, time.January, 31, 15, 0, 0, 0, time.UTC)

	next := AddMonths(jan31, 1)
	if next.Month() != time.February || next.Year() != 2024 {
		t.Fatalf("Jan 31 + 1 month = %s, want a date in February 2024", next)
	}
	if next.Day() != 1 {
		t.Fatalf("expected anchor on day 1, got day %d", next.Day())
	}

	prev := AddMonths(jan31, -1)
	if prev.Month() != time.December || prev.Year() != 2023 {
		t.Fatalf("Jan 31 - 1 month = %s, want a date in December 2023", prev)
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	d := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)
	key := DateKey(d)
	if key != "2024-03-05" {
		t.Fatalf("DateKey = %q, want 2024-03-05", key)
	}
	parsed, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("parse date key: %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.March || parsed.Day() != 5 {
		t.Fatalf("round trip mismatch: %s", parsed)
	}
}

func TestParseDateKeyRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"2024-3-5", "05-03-2024", "2024-03-05T00:00:00Z", "yesterday"} {
		if _, err := ParseDateKey(bad); err == nil {
			t.Errorf("ParseDateKey(%q) accepted, want error", bad)
		}
	}
}
