package task

import (
	"fmt"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/query"
	domaintask "github.com/jsamuelsen11/tasksync/internal/domain/task"
)

// ToDomainTask converts a TaskDTO to a domain Task. The status is matched
// case-insensitively; an unknown status fails with domain.ErrDecode.
func ToDomainTask(dto *TaskDTO) (domaintask.Task, error) {
	status, ok := domaintask.ParseStatus(dto.Status)
	if !ok {
		return domaintask.Task{}, fmt.Errorf("%w: task %d has unknown status %q", domain.ErrDecode, dto.ID, dto.Status)
	}

	return domaintask.Task{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		Status:      status,
	}, nil
}

// ToDomainPage converts a PageDTO to a query.Page, keeping server order.
// A null content array yields an empty page.
func ToDomainPage(dto *PageDTO) (query.Page, error) {
	if dto.TotalPages < 0 {
		return query.Page{}, fmt.Errorf("%w: negative totalPages %d", domain.ErrDecode, dto.TotalPages)
	}

	tasks := make([]domaintask.Task, 0, len(dto.Content))
	for i := range dto.Content {
		t, err := ToDomainTask(&dto.Content[i])
		if err != nil {
			return query.Page{}, err
		}
		tasks = append(tasks, t)
	}

	return query.Page{Tasks: tasks, TotalPages: dto.TotalPages}, nil
}

// ToCreateRequest converts a draft to the POST body.
func ToCreateRequest(d domaintask.Draft) TaskRequestDTO {
	return TaskRequestDTO{
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Status:      d.Status.String(),
	}
}

// ToUpdateRequest converts a full task record to the PUT body. Every field
// is sent because the server replaces the stored record.
func ToUpdateRequest(t domaintask.Task) TaskRequestDTO {
	return TaskRequestDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Status:      t.Status.String(),
	}
}

// FromDomainTask converts a domain Task to its wire form. The reference
// API uses it to render responses.
func FromDomainTask(t domaintask.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Status:      t.Status.String(),
	}
}
