package handlers

import "net/http"

// Task handlers do not check that the caller owns the parent goal.
// TODO: scope task reads and writes to the owner of the parent goal.

type createTaskRequest struct {
	GoalID   any `json:"goal_id"`
	TaskName any `json:"task_name"`
}

type updateTaskRequest struct {
	TaskName any `json:"task_name"`
	Status   any `json:"status"`
}

type createTaskResponse struct {
	Message string `json:"message"`
	TaskID  int64  `json:"task_id"`
}

// CreateTask attaches a task to a goal.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	id, err := h.store.CreateTask(r.Context(), sqlValue(req.GoalID), sqlValue(req.TaskName))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, createTaskResponse{Message: "Task added successfully", TaskID: id})
}

// ListTasksForGoal returns the tasks attached to a goal.
func (h *Handlers) ListTasksForGoal(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.ListTasks(r.Context(), pathID(r, "goalId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tasks)
}

// UpdateTask overwrites a task's name and status. Unknown task IDs succeed.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.store.UpdateTask(r.Context(), pathID(r, "taskId"), sqlValue(req.TaskName), sqlValue(req.Status)); err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messageResponse{Message: "Task updated successfully"})
}

// DeleteTask removes a task. Unknown task IDs succeed.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.DeleteTask(r.Context(), pathID(r, "taskId")); err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messageResponse{Message: "Task deleted successfully"})
}
