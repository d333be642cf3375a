package models

import (
	"time"

	"github.com/google/uuid"
)

// HabitKind distinguishes done/not-done habits from measured ones.
type HabitKind string

const (
	KindBoolean HabitKind = "boolean"
	KindNumeric HabitKind = "numeric"
)

func (k HabitKind) Valid() bool {
	return k == KindBoolean || k == KindNumeric
}

type Habit struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Text      string    `db:"text"`
	Kind      HabitKind `db:"kind"`
	Unit      string    `db:"unit"`
	Target    float64   `db:"target"`
	CreatedAt time.Time `db:"created_at"`
}

// Normalize enforces the kind invariant: unit and target only carry meaning
// for numeric habits. A boolean habit always has target 1 and no unit.
func (h *Habit) Normalize() {
	if h.Kind == KindBoolean {
		h.Unit = ""
		h.Target = 1
	}
}
