package handlers

import (
	"net/http"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Summary reports the user's income, the total invested across goals and what is left.
func (h *Handlers) Summary(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)

	income, err := h.store.GetIncome(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	goals, err := h.store.ListGoalInvestments(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, summarize(income, goals))
}

// summarize computes the totals in decimal so repeated additions do not drift.
// Savings may be negative.
func summarize(income float64, goals []models.GoalSummary) models.Summary {
	total := decimal.Zero
	for _, g := range goals {
		total = total.Add(decimal.NewFromFloat(g.InvestmentAmount))
	}
	in := decimal.NewFromFloat(income)

	if goals == nil {
		goals = []models.GoalSummary{}
	}

	return models.Summary{
		Income:          in.InexactFloat64(),
		TotalInvestment: total.InexactFloat64(),
		Savings:         in.Sub(total).InexactFloat64(),
		Goals:           goals,
	}
}
