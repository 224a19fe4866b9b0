package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the API router with middlewares applied to every route.
// Everything except /, /signup and /login sits behind AuthMiddleware.
func (h *Handlers) Routes(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Get("/", h.Home)
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(h.AuthMiddleware)

		r.Get("/me", h.Me)
		r.Post("/income", h.SetIncome)

		r.Route("/goals", func(r chi.Router) {
			r.Post("/", h.CreateGoal)
			r.Get("/", h.ListGoals)
			r.Route("/{goalId}", func(r chi.Router) {
				r.Get("/", h.GetGoal)
				r.Put("/", h.UpdateGoal)
				r.Delete("/", h.DeleteGoal)

				r.Put("/invest", h.AddInvestment)
				r.Put("/invest/edit", h.SetInvestment)
				r.Delete("/invest", h.ClearInvestment)

				r.Get("/tasks", h.ListTasksForGoal)
			})
		})

		r.Post("/tasks", h.CreateTask)
		r.Put("/tasks/{taskId}", h.UpdateTask)
		r.Delete("/tasks/{taskId}", h.DeleteTask)

		r.Get("/summary", h.Summary)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusNotFound, messageResponse{Message: "Not found"})
	})

	return r
}
