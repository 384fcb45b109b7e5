// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the reference task API.
package dto

import (
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

// ToTaskResponse converts a domain task to its response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Status:      t.Status.String(),
	}
}

// PageResponse is the paginated task list. The field names follow the
// Spring Data page layout existing clients already parse.
type PageResponse struct {
	Content       []TaskResponse `json:"content"`
	TotalPages    int            `json:"totalPages"`
	TotalElements int            `json:"totalElements"`
	Number        int            `json:"number"`
	Size          int            `json:"size"`
}

// ToPageResponse converts a task page to its response DTO. Content is never
// null.
func ToPageResponse(p ports.TaskPage) PageResponse {
	content := make([]TaskResponse, len(p.Tasks))
	for i := range p.Tasks {
		content[i] = ToTaskResponse(&p.Tasks[i])
	}
	return PageResponse{
		Content:       content,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
		Number:        p.Page,
		Size:          p.Size,
	}
}

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
