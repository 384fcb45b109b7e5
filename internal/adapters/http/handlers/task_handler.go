package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/tasksync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// TaskHandler handles the /api/tasks endpoints. Every route requires an
// authenticated user and only sees that user's tasks.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks handles GET /api/tasks?page=&size=&status=&category=.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	params, err := parseListParams(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.svc.ListTasks(r.Context(), owner, params.filter, params.page, params.size)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToPageResponse(result))
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TaskRequest
	if !bind(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTask(r.Context(), owner, req.ToTask(0))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTaskResponse(&created))
}

// UpdateTask handles PUT /api/tasks/{id}. The body replaces every field.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TaskRequest
	if !bind(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), owner, req.ToTask(id))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTaskResponse(&updated))
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), owner, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
