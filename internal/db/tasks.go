package db

import (
	"context"
	"fmt"

	"streaky/internal/db/models"

	"github.com/google/uuid"
)

// CreateTask creates a new task in the database
func (db *DB) CreateTask(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, text, done, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := db.Exec(ctx, query,
		task.ID.String(),
		task.UserID.String(),
		task.Text,
		task.Done,
		task.CreatedAt,
	)
	return err
}

// UpdateTaskDone sets the done flag of a task owned by the given user.
func (db *DB) UpdateTaskDone(ctx context.Context, taskID, userID uuid.UUID, done bool) error {
	query := `UPDATE tasks SET done = $1 WHERE id = $2 AND user_id = $3`

	tag, err := db.Exec(ctx, query, done, taskID.String(), userID.String())
	if err != nil {
		return fmt.Errorf("error updating task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTask removes a task owned by the given user.
func (db *DB) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	tag, err := db.Exec(ctx, query, taskID.String(), userID.String())
	if err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTasks retrieves all tasks owned by a user.
func (db *DB) ListTasks(ctx context.Context, userID uuid.UUID) ([]models.Task, error) {
	query := `
		SELECT id, user_id, text, done, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := db.Query(ctx, query, userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.Done, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
