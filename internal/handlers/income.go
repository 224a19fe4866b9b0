package handlers

import "net/http"

type incomeRequest struct {
	MonthlyIncome *float64 `json:"monthly_income"`
}

// SetIncome records the user's monthly income, replacing any previous value.
func (h *Handlers) SetIncome(w http.ResponseWriter, r *http.Request) {
	var req incomeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if req.MonthlyIncome == nil || *req.MonthlyIncome <= 0 {
		writeError(w, r, badRequest("Invalid income", ErrInvalidAmount))
		return
	}

	if err := h.store.UpsertIncome(r.Context(), currentUserID(r), *req.MonthlyIncome); err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, messageResponse{Message: "Income saved successfully"})
}
