package storage

import (
	"context"
	"database/sql"
	"errors"
)

// UpsertIncome sets the monthly income for a user, inserting the row on first use.
// The unique index on income.user_id makes this a single atomic statement.
func (db *DB) UpsertIncome(ctx context.Context, userID int64, monthlyIncome float64) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO income (user_id, monthly_income, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			monthly_income = excluded.monthly_income,
			updated_at = CURRENT_TIMESTAMP
	`, userID, monthlyIncome)
	return err
}

// GetIncome returns the monthly income for a user, or 0 if none was recorded.
func (db *DB) GetIncome(ctx context.Context, userID int64) (float64, error) {
	var amount float64
	err := db.conn.QueryRowContext(ctx,
		"SELECT monthly_income FROM income WHERE user_id = ?",
		userID,
	).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return amount, err
}
