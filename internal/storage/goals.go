package storage

import (
	"context"

	"finance-tracker/internal/models"
)

// target_amount is cast on read because REAL affinity keeps non-numeric text as text.
const goalColumns = `goal_id, user_id, title, category,
	CAST(target_amount AS REAL), target_date, COALESCE(investment_amount, 0),
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (models.Goal, error) {
	var g models.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Category,
		&g.TargetAmount, &g.TargetDate, &g.InvestmentAmount,
		&g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// CreateGoal inserts a goal owned by userID with no investment yet and returns its ID.
func (db *DB) CreateGoal(ctx context.Context, userID int64, f models.GoalFields) (int64, error) {
	result, err := db.conn.ExecContext(ctx, `
		INSERT INTO goals (user_id, title, category, target_amount, target_date, investment_amount)
		VALUES (?, ?, ?, ?, ?, 0)
	`, userID, f.Title, f.Category, f.TargetAmount, f.TargetDate)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetGoal retrieves a single goal by ID, scoped to its owner.
func (db *DB) GetGoal(ctx context.Context, goalID, userID int64) (*models.Goal, error) {
	row := db.conn.QueryRowContext(ctx,
		"SELECT "+goalColumns+" FROM goals WHERE goal_id = ? AND user_id = ?",
		goalID, userID,
	)
	g, err := scanGoal(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &g, nil
}

// ListGoals retrieves all goals owned by a user in storage order.
func (db *DB) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT "+goalColumns+" FROM goals WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

// UpdateGoal overwrites the editable fields of a goal owned by userID.
// It reports how many rows matched; zero means the goal does not exist or has another owner.
func (db *DB) UpdateGoal(ctx context.Context, goalID, userID int64, f models.GoalFields) (int64, error) {
	return db.exec(ctx, `
		UPDATE goals
		SET title = ?, category = ?, target_amount = ?, target_date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE goal_id = ? AND user_id = ?
	`, f.Title, f.Category, f.TargetAmount, f.TargetDate, goalID, userID)
}

// DeleteGoal removes a goal owned by userID.
func (db *DB) DeleteGoal(ctx context.Context, goalID, userID int64) (int64, error) {
	return db.exec(ctx, "DELETE FROM goals WHERE goal_id = ? AND user_id = ?", goalID, userID)
}

// AddInvestment increments a goal's investment amount, treating NULL as zero.
func (db *DB) AddInvestment(ctx context.Context, goalID, userID int64, amount float64) (int64, error) {
	return db.exec(ctx, `
		UPDATE goals
		SET investment_amount = COALESCE(investment_amount, 0) + ?, updated_at = CURRENT_TIMESTAMP
		WHERE goal_id = ? AND user_id = ?
	`, amount, goalID, userID)
}

// SetInvestment overwrites a goal's investment amount.
func (db *DB) SetInvestment(ctx context.Context, goalID, userID int64, amount float64) (int64, error) {
	return db.exec(ctx, `
		UPDATE goals
		SET investment_amount = ?, updated_at = CURRENT_TIMESTAMP
		WHERE goal_id = ? AND user_id = ?
	`, amount, goalID, userID)
}

// ClearInvestment resets a goal's investment amount to zero.
func (db *DB) ClearInvestment(ctx context.Context, goalID, userID int64) (int64, error) {
	return db.SetInvestment(ctx, goalID, userID, 0)
}

// ListGoalInvestments returns the title and investment amount of every goal owned by a user.
func (db *DB) ListGoalInvestments(ctx context.Context, userID int64) ([]models.GoalSummary, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT title, COALESCE(investment_amount, 0) FROM goals WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []models.GoalSummary{}
	for rows.Next() {
		var g models.GoalSummary
		if err := rows.Scan(&g.Title, &g.InvestmentAmount); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

func (db *DB) exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
