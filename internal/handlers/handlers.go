package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/models"

	"github.com/go-chi/chi/v5"
)

// Context key type to avoid collisions.
type contextKey string

// UserIDContextKey is the context key for the authenticated user's ID.
const UserIDContextKey contextKey = "user_id"

// Store is the persistence the domain handlers depend on.
type Store interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	UpsertIncome(ctx context.Context, userID int64, monthlyIncome float64) error
	GetIncome(ctx context.Context, userID int64) (float64, error)

	CreateGoal(ctx context.Context, userID int64, f models.GoalFields) (int64, error)
	GetGoal(ctx context.Context, goalID, userID int64) (*models.Goal, error)
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, goalID, userID int64, f models.GoalFields) (int64, error)
	DeleteGoal(ctx context.Context, goalID, userID int64) (int64, error)
	ListGoalInvestments(ctx context.Context, userID int64) ([]models.GoalSummary, error)

	AddInvestment(ctx context.Context, goalID, userID int64, amount float64) (int64, error)
	SetInvestment(ctx context.Context, goalID, userID int64, amount float64) (int64, error)
	ClearInvestment(ctx context.Context, goalID, userID int64) (int64, error)

	CreateTask(ctx context.Context, goalID, taskName any) (int64, error)
	ListTasks(ctx context.Context, goalID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, taskID int64, taskName, status any) (int64, error)
	DeleteTask(ctx context.Context, taskID int64) (int64, error)
}

// Authenticator registers users, logs them in and validates their tokens.
type Authenticator interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error)
	Authenticate(ctx context.Context, authorization string) (int64, error)
}

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	store Store
	auth  Authenticator
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store Store, authenticator Authenticator) *Handlers {
	return &Handlers{store: store, auth: authenticator}
}

// UserIDFromContext returns the authenticated user's ID stored by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDContextKey).(int64)
	return id, ok
}

// Home reports that the server is up.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "Backend running successfully")
}

// messageResponse is the body of every successful mutation.
type messageResponse struct {
	Message string `json:"message"`
}

// apiError carries the status and client-facing message for a failed request.
type apiError struct {
	Status  int
	Message string
	Err     error
}

func (e *apiError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *apiError) Unwrap() error {
	return e.Err
}

var (
	// ErrInvalidAmount is wrapped by every rejected monetary input.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNotFound is wrapped when an owner-scoped lookup or update matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidPayload is wrapped when the request body is not valid JSON.
	ErrInvalidPayload = errors.New("invalid request payload")
)

func badRequest(message string, err error) error {
	return &apiError{Status: http.StatusBadRequest, Message: message, Err: err}
}

func notFound(message string) error {
	return &apiError{Status: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// writeError maps an error to its HTTP status and JSON message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *apiError
	switch {
	case errors.As(err, &apiErr):
		respondWithJSON(w, apiErr.Status, messageResponse{Message: apiErr.Message})
	case errors.Is(err, auth.ErrTokenMissing):
		respondWithJSON(w, http.StatusUnauthorized, messageResponse{Message: "Token required"})
	case errors.Is(err, auth.ErrTokenInvalid):
		respondWithJSON(w, http.StatusForbidden, messageResponse{Message: "Invalid token"})
	case errors.Is(err, auth.ErrAlreadyExists):
		respondWithJSON(w, http.StatusBadRequest, messageResponse{Message: "User already exists"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondWithJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid email or password"})
	default:
		log.Printf("%s %s error: %v", r.Method, r.URL.Path, err)
		respondWithJSON(w, http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}
}

// respondWithJSON writes payload as a JSON response with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// decodeJSON reads the request body into dst. An empty body leaves dst untouched.
// Numbers decoded into interface fields stay json.Number.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return badRequest("Invalid request payload", errors.Join(ErrInvalidPayload, err))
	}
	return nil
}

// sqlValue turns a decoded JSON value into a bind argument without checking its type.
// Numbers keep their literal text so the column affinity decides how they are stored,
// and objects or arrays are stored as their JSON text.
func sqlValue(v any) any {
	switch v := v.(type) {
	case nil, string, bool:
		return v
	case json.Number:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		return string(data)
	}
}

// pathID parses a numeric URL parameter. Non-numeric values yield 0, which matches no row.
func pathID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id
}

// currentUserID returns the ID placed in the context by AuthMiddleware.
func currentUserID(r *http.Request) int64 {
	id, _ := UserIDFromContext(r.Context())
	return id
}
