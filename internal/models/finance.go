package models

import "time"

// Goal is a savings target with the amount invested towards it so far.
// The descriptive fields are stored as the client sent them and are nil when unset.
type Goal struct {
	ID               int64     `json:"goal_id"`
	UserID           int64     `json:"user_id"`
	Title            *string   `json:"title"`
	Category         *string   `json:"category"`
	TargetAmount     *float64  `json:"target_amount"`
	TargetDate       *string   `json:"target_date"`
	InvestmentAmount float64   `json:"investment_amount"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// GoalFields are the client-supplied columns of a goal. Each value is bound
// as given: nil stores NULL and SQLite column affinity does any conversion.
type GoalFields struct {
	Title        any
	Category     any
	TargetAmount any
	TargetDate   any
}

// Task is a checklist item attached to a goal. Status is free text.
type Task struct {
	ID        int64     `json:"task_id"`
	GoalID    int64     `json:"goal_id"`
	TaskName  *string   `json:"task_name"`
	Status    *string   `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GoalSummary is the slice of a goal reported by the summary endpoint.
type GoalSummary struct {
	Title            *string `json:"title"`
	InvestmentAmount float64 `json:"investment_amount"`
}

// Summary aggregates a user's income against what they have invested.
type Summary struct {
	Income          float64       `json:"income"`
	TotalInvestment float64       `json:"totalInvestment"`
	Savings         float64       `json:"savings"`
	Goals           []GoalSummary `json:"goals"`
}
