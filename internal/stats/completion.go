package stats

import "streaky/internal/db/models"

// IsCompleted decides whether an observed value counts as a completed day for
// the habit. A day with no data is never completed, whatever the habit's
// target; in particular a numeric habit with target 0 is satisfied by any
// recorded value, including a recorded zero, but not by absence.
func IsCompleted(habit models.Habit, obs models.Observation) bool {
	value, recorded := obs.Value()
	if !recorded {
		return false
	}
	if habit.Kind == models.KindNumeric {
		return value >= habit.Target
	}
	return value != 0
}
