package storage

import (
	"context"

	"finance-tracker/internal/models"
)

// Task statements are keyed by task or goal ID only; callers are not checked
// against the owner of the parent goal.

// CreateTask attaches a new task to a goal and returns its ID.
// Both values are bound as given; a goal_id such as "3" is stored as the integer 3.
func (db *DB) CreateTask(ctx context.Context, goalID, taskName any) (int64, error) {
	result, err := db.conn.ExecContext(ctx,
		"INSERT INTO tasks (goal_id, task_name) VALUES (?, ?)",
		goalID, taskName,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListTasks retrieves all tasks attached to a goal.
func (db *DB) ListTasks(ctx context.Context, goalID int64) ([]models.Task, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT task_id, goal_id, task_name, status, created_at, updated_at
		FROM tasks WHERE goal_id = ?
	`, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.GoalID, &t.TaskName, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// UpdateTask overwrites a task's name and status.
func (db *DB) UpdateTask(ctx context.Context, taskID int64, taskName, status any) (int64, error) {
	return db.exec(ctx, `
		UPDATE tasks
		SET task_name = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE task_id = ?
	`, taskName, status, taskID)
}

// DeleteTask removes a task.
func (db *DB) DeleteTask(ctx context.Context, taskID int64) (int64, error) {
	return db.exec(ctx, "DELETE FROM tasks WHERE task_id = ?", taskID)
}
