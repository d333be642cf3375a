package db

import (
	"context"
	"fmt"

	"streaky/internal/db/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateUser inserts a new user. Returns ErrDuplicate when the username is taken.
func (db *DB) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, password, role, timezone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := db.Exec(ctx, query,
		user.ID.String(),
		user.Username,
		user.PasswordHash,
		user.Role,
		user.Timezone,
		user.CreatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// GetUserByUsername retrieves a user by their unique username.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password, role, timezone, created_at
		FROM users
		WHERE username = $1`

	user := &models.User{}
	err := db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.Timezone,
		&user.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (db *DB) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, username, password, role, timezone, created_at
		FROM users
		WHERE id = $1`

	user := &models.User{}
	err := db.QueryRow(ctx, query, userID.String()).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.Timezone,
		&user.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user; habits, history and tasks cascade in the schema.
func (db *DB) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID.String())
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateUserPassword replaces a user's password hash.
func (db *DB) UpdateUserPassword(ctx context.Context, userID uuid.UUID, hash string) error {
	tag, err := db.Exec(ctx, `UPDATE users SET password = $1 WHERE id = $2`, hash, userID.String())
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateUserTimezone updates a user's timezone
func (db *DB) UpdateUserTimezone(ctx context.Context, userID uuid.UUID, timezone string) error {
	query := `
		UPDATE users
		SET timezone = $1
		WHERE id = $2`

	_, err := db.Exec(ctx, query, timezone, userID.String())
	return err
}

// ListUserSummaries returns every user with their habit and task counts,
// for the admin panel.
func (db *DB) ListUserSummaries(ctx context.Context) ([]models.UserSummary, error) {
	query := `
		SELECT u.id, u.username, u.role,
			(SELECT COUNT(*) FROM habits WHERE user_id = u.id) AS habit_count,
			(SELECT COUNT(*) FROM tasks WHERE user_id = u.id) AS task_count
		FROM users u
		ORDER BY u.username`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.UserSummary
	for rows.Next() {
		var s models.UserSummary
		err := rows.Scan(&s.ID, &s.Username, &s.Role, &s.HabitCount, &s.TaskCount)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
