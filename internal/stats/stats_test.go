package stats

import (
	"math"
	"testing"
	"time"

	"streaky/internal/db/models"
)

func booleanHabit(text string) models.Habit {
	return models.Habit{Text: text, Kind: models.KindBoolean, Target: 1}
}

// historyFor marks the given day offsets (days before today) as completed.
func historyFor(today time.Time, offsets ...int) map[string]float64 {
	h := make(map[string]float64)
	for _, off := range offsets {
		h[DateKey(today.AddDate(0, 0, -off))] = 1
	}
	return h
}

func TestWeeklyScoreTwoHabits(t *testing.T) {
	today := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	// Habit A completed 5 of the trailing 7 days, habit B 3 of them.
	snapshot := Snapshot{
		{Habit: booleanHabit("A"), History: historyFor(today, 0, 1, 2, 3, 4)},
		{Habit: booleanHabit("B"), History: historyFor(today, 0, 2, 6)},
	}

	// round(100 * 8 / 14) = 57
	if got := WeeklyScore(snapshot, today); got != 57 {
		t.Fatalf("WeeklyScore = %d, want 57", got)
	}
}

func TestWeeklyScoreNoHabits(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	if got := WeeklyScore(Snapshot{}, today); got != 0 {
		t.Fatalf("WeeklyScore with no habits = %d, want 0", got)
	}
}

func TestWeeklyScoreFullCompletion(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	snapshot := Snapshot{
		{Habit: booleanHabit("A"), History: historyFor(today, 0, 1, 2, 3, 4, 5, 6)},
	}
	if got := WeeklyScore(snapshot, today); got != 100 {
		t.Fatalf("WeeklyScore = %d, want 100", got)
	}
}

func TestWeeklyScoreExcludesEntriesOutsideWindow(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	snapshot := Snapshot{
		// Entries 7 and 30 days back fall outside the trailing-7 window.
		{Habit: booleanHabit("A"), History: historyFor(today, 7, 30)},
	}
	if got := WeeklyScore(snapshot, today); got != 0 {
		t.Fatalf("WeeklyScore = %d, want 0", got)
	}
}

func TestDailyTrendOrderedOldestFirst(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	snapshot := Snapshot{
		{Habit: booleanHabit("A"), History: historyFor(today, 0, 6)},
		{Habit: booleanHabit("B"), History: historyFor(today, 0)},
	}

	trend := DailyTrend(snapshot, today, WindowWeek)
	want := []int{1, 0, 0, 0, 0, 0, 2}
	if len(trend) != len(want) {
		t.Fatalf("trend length = %d, want %d", len(trend), len(want))
	}
	for i := range want {
		if trend[i] != want[i] {
			t.Fatalf("trend = %v, want %v", trend, want)
		}
	}
}

func TestMonthlyRateFullAndEmpty(t *testing.T) {
	year, month := 2024, time.February

	full := make(map[string]float64)
	for day := 1; day <= 29; day++ {
		full[DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))] = 1
	}
	snapshot := Snapshot{
		{Habit: booleanHabit("A"), History: full},
		{Habit: booleanHabit("B"), History: full},
	}
	if got := MonthlyRate(snapshot, year, month); got != 100 {
		t.Fatalf("fully completed month rate = %d, want 100", got)
	}

	empty := Snapshot{
		{Habit: booleanHabit("A"), History: map[string]float64{}},
	}
	if got := MonthlyRate(empty, year, month); got != 0 {
		t.Fatalf("empty month rate = %d, want 0", got)
	}

	if got := MonthlyRate(Snapshot{}, year, month); got != 0 {
		t.Fatalf("rate with no habits = %d, want 0", got)
	}
}

func TestMonthlyRateCountsAbsentDaysAsOpportunities(t *testing.T) {
	year, month := 2023, time.February // 28 days

	// 14 completed days out of 28 opportunities.
	history := make(map[string]float64)
	for day := 1; day <= 14; day++ {
		history[DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))] = 1
	}
	snapshot := Snapshot{{Habit: booleanHabit("A"), History: history}}

	if got := MonthlyRate(snapshot, year, month); got != 50 {
		t.Fatalf("rate = %d, want 50", got)
	}
}

func TestBestDay(t *testing.T) {
	year, month := 2024, time.March
	day := func(d int) string {
		return DateKey(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
	}

	snapshot := Snapshot{
		{Habit: booleanHabit("A"), History: map[string]float64{day(3): 1, day(10): 1}},
		{Habit: booleanHabit("B"), History: map[string]float64{day(10): 1}},
	}
	best, ok := BestDay(snapshot, year, month)
	if !ok || best != 10 {
		t.Fatalf("BestDay = (%d, %v), want (10, true)", best, ok)
	}
}

func TestBestDayTieGoesToEarliestDay(t *testing.T) {
	year, month := 2024, time.March
	day := func(d int) string {
		return DateKey(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
	}

	snapshot := Snapshot{
		{Habit: booleanHabit("A"), History: map[string]float64{day(5): 1, day(20): 1}},
	}
	best, ok := BestDay(snapshot, year, month)
	if !ok || best != 5 {
		t.Fatalf("BestDay = (%d, %v), want (5, true)", best, ok)
	}
}

func TestBestDayEmptyMonthHasNoBestDay(t *testing.T) {
	snapshot := Snapshot{
		{Habit: booleanHabit("A"), History: map[string]float64{}},
	}
	if best, ok := BestDay(snapshot, 2024, time.March); ok {
		t.Fatalf("BestDay on empty month = (%d, true), want no best day", best)
	}
}

func TestRollingStatsDrinkWater(t *testing.T) {
	today := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	habit := models.Habit{
		Text:   "Drink Water",
		Kind:   models.KindNumeric,
		Unit:   "glasses",
		Target: 8,
	}
	hh := models.HabitHistory{
		Habit: habit,
		History: map[string]float64{
			"2024-01-01": 8,
			"2024-01-02": 5,
		},
	}

	if !IsCompleted(habit, hh.On("2024-01-01")) {
		t.Error("day with value 8 against target 8 should be completed")
	}
	if IsCompleted(habit, hh.On("2024-01-02")) {
		t.Error("day with value 5 against target 8 should not be completed")
	}

	r := RollingStats(hh, today, WindowMonth)
	if r.Total != 13 {
		t.Fatalf("Total = %v, want 13", r.Total)
	}
	if r.Max != 8 {
		t.Fatalf("Max = %v, want 8", r.Max)
	}
	if math.Abs(r.Average-13.0/30.0) > 1e-9 {
		t.Fatalf("Average = %v, want %v", r.Average, 13.0/30.0)
	}
}

// The rolling average divides by the window length even when the habit has
// data for far fewer days. This mirrors the upstream behavior on purpose; if
// it ever changes to divide by elapsed days or days-with-data, this test
// should fail and force the change to be deliberate.
func TestRollingStatsFixedWindowDivisor(t *testing.T) {
	today := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	hh := models.HabitHistory{
		Habit: models.Habit{Kind: models.KindNumeric, Target: 1, Unit: "reps"},
		History: map[string]float64{
			"2024-01-01": 30,
		},
	}

	r := RollingStats(hh, today, WindowMonth)
	if r.Average != 1 {
		t.Fatalf("Average = %v, want 1 (total 30 over fixed 30-day window)", r.Average)
	}
}
