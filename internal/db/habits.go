package db

import (
	"context"
	"fmt"

	"streaky/internal/db/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateHabit inserts a new habit definition.
func (db *DB) CreateHabit(ctx context.Context, habit *models.Habit) error {
	query := `
		INSERT INTO habits (id, user_id, text, kind, unit, target, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := db.Exec(ctx, query,
		habit.ID.String(),
		habit.UserID.String(),
		habit.Text,
		habit.Kind,
		habit.Unit,
		habit.Target,
		habit.CreatedAt,
	)
	return err
}

// GetHabitByID retrieves a habit by its ID.
func (db *DB) GetHabitByID(ctx context.Context, habitID uuid.UUID) (*models.Habit, error) {
	query := `
		SELECT id, user_id, text, kind, unit, target, created_at
		FROM habits
		WHERE id = $1`

	habit := &models.Habit{}
	err := db.QueryRow(ctx, query, habitID.String()).Scan(
		&habit.ID,
		&habit.UserID,
		&habit.Text,
		&habit.Kind,
		&habit.Unit,
		&habit.Target,
		&habit.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting habit: %w", err)
	}
	return habit, nil
}

// DeleteHabit removes a habit owned by the given user; its history cascades.
func (db *DB) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	query := `DELETE FROM habits WHERE id = $1 AND user_id = $2`

	tag, err := db.Exec(ctx, query, habitID.String(), userID.String())
	if err != nil {
		return fmt.Errorf("error deleting habit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListHabits retrieves all habits owned by a user.
func (db *DB) ListHabits(ctx context.Context, userID uuid.UUID) ([]models.Habit, error) {
	query := `
		SELECT id, user_id, text, kind, unit, target, created_at
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := db.Query(ctx, query, userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		err := rows.Scan(&h.ID, &h.UserID, &h.Text, &h.Kind, &h.Unit, &h.Target, &h.CreatedAt)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// UpsertHistory applies a history write for one (habit, date) key. A Set is a
// single insert-or-update statement and a Clear is a single delete, so the
// store never observes a partial state between them.
func (db *DB) UpsertHistory(ctx context.Context, habitID uuid.UUID, date string, write models.HistoryWrite) error {
	value, set := write.Value()
	if !set {
		_, err := db.Exec(ctx,
			`DELETE FROM habit_history WHERE habit_id = $1 AND date = $2`,
			habitID.String(), date)
		if err != nil {
			return fmt.Errorf("error clearing history: %w", err)
		}
		return nil
	}

	query := `
		INSERT INTO habit_history (habit_id, date, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (habit_id, date) DO UPDATE SET value = excluded.value`

	_, err := db.Exec(ctx, query, habitID.String(), date, value)
	if err != nil {
		return fmt.Errorf("error upserting history: %w", err)
	}
	return nil
}

// GetHistoryValue retrieves the recorded value for one (habit, date) key.
// The second return value reports whether an entry exists at all.
func (db *DB) GetHistoryValue(ctx context.Context, habitID uuid.UUID, date string) (float64, bool, error) {
	var value float64
	err := db.QueryRow(ctx,
		`SELECT value FROM habit_history WHERE habit_id = $1 AND date = $2`,
		habitID.String(), date).Scan(&value)
	if err == pgx.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}

// GetHistory retrieves the full sparse history map for a habit.
func (db *DB) GetHistory(ctx context.Context, habitID uuid.UUID) (map[string]float64, error) {
	rows, err := db.Query(ctx,
		`SELECT date, value FROM habit_history WHERE habit_id = $1`,
		habitID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make(map[string]float64)
	for rows.Next() {
		var date string
		var value float64
		if err := rows.Scan(&date, &value); err != nil {
			return nil, err
		}
		history[date] = value
	}
	return history, rows.Err()
}

// ListHabitsWithHistory retrieves all of a user's habits together with their
// sparse history maps in one consistent fetch, for aggregation and the
// dashboard payload.
func (db *DB) ListHabitsWithHistory(ctx context.Context, userID uuid.UUID) ([]models.HabitHistory, error) {
	habits, err := db.ListHabits(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing habits: %w", err)
	}

	query := `
		SELECT hh.habit_id, hh.date, hh.value
		FROM habit_history hh
		JOIN habits h ON hh.habit_id = h.id
		WHERE h.user_id = $1`

	rows, err := db.Query(ctx, query, userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	histories := make(map[uuid.UUID]map[string]float64, len(habits))
	for rows.Next() {
		var habitID uuid.UUID
		var date string
		var value float64
		if err := rows.Scan(&habitID, &date, &value); err != nil {
			return nil, err
		}
		if histories[habitID] == nil {
			histories[habitID] = make(map[string]float64)
		}
		histories[habitID][date] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]models.HabitHistory, 0, len(habits))
	for _, h := range habits {
		history := histories[h.ID]
		if history == nil {
			history = make(map[string]float64)
		}
		result = append(result, models.HabitHistory{Habit: h, History: history})
	}
	return result, nil
}
