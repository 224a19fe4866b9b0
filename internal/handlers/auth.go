package handlers

import (
	"errors"
	"net/http"

	"finance-tracker/internal/storage"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type profileResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Signup registers a new user.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, messageResponse{Message: "User registered successfully"})
}

// Login exchanges credentials for a session token.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, _, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, loginResponse{Message: "Login successful", Token: token})
}

// Me returns the profile of the authenticated user.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUserByID(r.Context(), currentUserID(r))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, r, notFound("User not found"))
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, profileResponse{UserID: user.ID, Name: user.Name, Email: user.Email})
}
