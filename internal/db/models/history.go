package models

// HistoryWrite is the write side of a check-in: either record a value for a
// (habit, date) key or clear whatever is stored there. Modeled as a variant
// rather than a nullable value so the delete branch is explicit.
type HistoryWrite struct {
	value float64
	set   bool
}

func SetValue(v float64) HistoryWrite {
	return HistoryWrite{value: v, set: true}
}

func ClearValue() HistoryWrite {
	return HistoryWrite{}
}

// Value returns the value to store and whether this write is a Set.
// ok == false means the entry must be removed.
func (w HistoryWrite) Value() (float64, bool) {
	return w.value, w.set
}

// Observation is the read side: a day either has a recorded value or no data
// at all. A recorded zero is not the same as an absent day.
type Observation struct {
	value    float64
	recorded bool
}

func NoData() Observation {
	return Observation{}
}

func Recorded(v float64) Observation {
	return Observation{value: v, recorded: true}
}

func (o Observation) Value() (float64, bool) {
	return o.value, o.recorded
}

// HabitHistory pairs a habit with a snapshot of its sparse history,
// keyed by "YYYY-MM-DD" date strings.
type HabitHistory struct {
	Habit   Habit
	History map[string]float64
}

// On reports what was recorded for the given date key, if anything.
func (hh HabitHistory) On(date string) Observation {
	v, ok := hh.History[date]
	if !ok {
		return NoData()
	}
	return Recorded(v)
}
