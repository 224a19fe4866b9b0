package handlers

import (
	"errors"
	"net/http"

	"finance-tracker/internal/models"
	"finance-tracker/internal/storage"
)

// goalRequest fields are stored as sent, whatever their JSON type.
type goalRequest struct {
	Title        any `json:"title"`
	Category     any `json:"category"`
	TargetAmount any `json:"target_amount"`
	TargetDate   any `json:"target_date"`
}

func (req goalRequest) fields() models.GoalFields {
	return models.GoalFields{
		Title:        sqlValue(req.Title),
		Category:     sqlValue(req.Category),
		TargetAmount: sqlValue(req.TargetAmount),
		TargetDate:   sqlValue(req.TargetDate),
	}
}

type createGoalResponse struct {
	Message string `json:"message"`
	GoalID  int64  `json:"goal_id"`
}

type investmentRequest struct {
	InvestmentAmount *float64 `json:"investment_amount"`
}

// CreateGoal adds a goal for the authenticated user. Fields are stored as given.
func (h *Handlers) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	id, err := h.store.CreateGoal(r.Context(), currentUserID(r), req.fields())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, createGoalResponse{Message: "Goal created successfully", GoalID: id})
}

// ListGoals returns every goal owned by the authenticated user.
func (h *Handlers) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.store.ListGoals(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, goals)
}

// GetGoal returns a single goal owned by the authenticated user.
func (h *Handlers) GetGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := h.store.GetGoal(r.Context(), pathID(r, "goalId"), currentUserID(r))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, r, notFound("Goal not found"))
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, goal)
}

// UpdateGoal overwrites a goal's fields. Goals owned by someone else are reported as not found.
func (h *Handlers) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	n, err := h.store.UpdateGoal(r.Context(), pathID(r, "goalId"), currentUserID(r), req.fields())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if n == 0 {
		writeError(w, r, notFound("Goal not found"))
		return
	}

	respondWithJSON(w, http.StatusOK, messageResponse{Message: "Goal updated successfully"})
}

// DeleteGoal removes a goal. Deleting a goal that does not exist succeeds.
func (h *Handlers) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.DeleteGoal(r.Context(), pathID(r, "goalId"), currentUserID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messageResponse{Message: "Goal deleted successfully"})
}

// AddInvestment adds a positive contribution to a goal's investment amount.
func (h *Handlers) AddInvestment(w http.ResponseWriter, r *http.Request) {
	var req investmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if req.InvestmentAmount == nil || *req.InvestmentAmount <= 0 {
		writeError(w, r, badRequest("Invalid investment amount", ErrInvalidAmount))
		return
	}

	if _, err := h.store.AddInvestment(r.Context(), pathID(r, "goalId"), currentUserID(r), *req.InvestmentAmount); err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messageResponse{Message: "Investment added successfully"})
}

// SetInvestment replaces a goal's investment amount with a non-negative value.
func (h *Handlers) SetInvestment(w http.ResponseWriter, r *http.Request) {
	var req investmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if req.InvestmentAmount == nil || *req.InvestmentAmount < 0 {
		writeError(w, r, badRequest("Invalid amount", ErrInvalidAmount))
		return
	}

	if _, err := h.store.SetInvestment(r.Context(), pathID(r, "goalId"), currentUserID(r), *req.InvestmentAmount); err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messageResponse{Message: "Investment updated successfully"})
}

// ClearInvestment resets a goal's investment amount to zero.
func (h *Handlers) ClearInvestment(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.ClearInvestment(r.Context(), pathID(r, "goalId"), currentUserID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messageResponse{Message: "Investment deleted successfully"})
}
