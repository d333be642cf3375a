// Package stats is the aggregation engine: pure functions over a snapshot of
// habits and their sparse histories. Nothing here touches the database or any
// other mutable state, so every computation is directly testable against a
// literal snapshot.
package stats

import (
	"math"
	"time"

	"streaky/internal/db/models"
)

// Snapshot is one consistent fetch of a user's habits and histories.
type Snapshot []models.HabitHistory

// WindowWeek and WindowMonth are the two chart windows the dashboard uses.
const (
	WindowWeek  = 7
	WindowMonth = 30
)

// completedOn counts how many habits in the snapshot were completed on the
// given date key.
func (s Snapshot) completedOn(date string) int {
	count := 0
	for _, hh := range s {
		if IsCompleted(hh.Habit, hh.On(date)) {
			count++
		}
	}
	return count
}

// WeeklyScore is the percentage of (habit, day) opportunities completed over
// the trailing 7 days ending today, inclusive. Rounded, clamped to [0,100],
// and 0 when there are no habits at all.
func WeeklyScore(s Snapshot, today time.Time) int {
	if len(s) == 0 {
		return 0
	}
	completed := 0
	for i := WindowWeek - 1; i >= 0; i-- {
		completed += s.completedOn(DateKey(today.AddDate(0, 0, -i)))
	}
	opportunities := len(s) * WindowWeek
	score := int(math.Round(100 * float64(completed) / float64(opportunities)))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// DailyTrend is the per-day completion count series for a trailing window
// ending today, ordered oldest to newest.
func DailyTrend(s Snapshot, today time.Time, window int) []int {
	trend := make([]int, 0, window)
	for i := window - 1; i >= 0; i-- {
		trend = append(trend, s.completedOn(DateKey(today.AddDate(0, 0, -i))))
	}
	return trend
}

// MonthlyRate is the percentage of completed (habit, day) opportunities for a
// whole calendar month. Days without an entry still count as opportunities.
func MonthlyRate(s Snapshot, year int, month time.Month) int {
	days := DaysInMonth(year, month)
	opportunities := len(s) * days
	if opportunities == 0 {
		return 0
	}
	completed := 0
	for day := 1; day <= days; day++ {
		completed += s.completedOn(DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)))
	}
	return int(math.Round(100 * float64(completed) / float64(opportunities)))
}

// BestDay returns the day of the month (1..N) with the most completed habits.
// Ties go to the earliest day. ok is false when no habit was completed on any
// day, so an empty month does not masquerade as "day 1".
func BestDay(s Snapshot, year int, month time.Month) (day int, ok bool) {
	days := DaysInMonth(year, month)
	best, bestCount := 0, 0
	for d := 1; d <= days; d++ {
		count := s.completedOn(DateKey(time.Date(year, month, d, 0, 0, 0, 0, time.UTC)))
		if count > bestCount {
			best, bestCount = d, count
		}
	}
	if bestCount == 0 {
		return 0, false
	}
	return best, true
}

// Rolling holds the numeric-habit rolling window stats.
type Rolling struct {
	Total   float64
	Max     float64
	Average float64
}

// RollingStats sums a numeric habit's recorded values over a trailing window
// ending today, treating absent days as 0. The average always divides by the
// window length, even when the habit is younger than the window; the tests
// pin this down.
func RollingStats(hh models.HabitHistory, today time.Time, window int) Rolling {
	var r Rolling
	for i := window - 1; i >= 0; i-- {
		value, _ := hh.On(DateKey(today.AddDate(0, 0, -i))).Value()
		r.Total += value
		if value > r.Max {
			r.Max = value
		}
	}
	r.Average = r.Total / float64(window)
	return r
}
