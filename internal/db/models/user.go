package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password"`
	Role         string    `db:"role"`
	Timezone     string    `db:"timezone"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserSummary is the admin listing row: a user plus how much data they own.
type UserSummary struct {
	ID         uuid.UUID `db:"id"`
	Username   string    `db:"username"`
	Role       string    `db:"role"`
	HabitCount int       `db:"habit_count"`
	TaskCount  int       `db:"task_count"`
}
