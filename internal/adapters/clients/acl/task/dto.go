// Package task implements the Anti-Corruption Layer translators for the
// task API's task resources. The wire format follows the Spring Data page
// layout the API has always used: a "content" array plus paging counters.
package task

// TaskDTO matches the API's task record.
type TaskDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

// TaskRequestDTO is the body of POST /api/tasks and PUT /api/tasks/{id}.
// ID is omitted on create. Status is omitted when unset so the server can
// apply its default.
type TaskRequestDTO struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status,omitempty"`
}

// PageDTO matches the paginated list response. Only Content and TotalPages
// are required; the remaining counters are informational.
type PageDTO struct {
	Content       []TaskDTO `json:"content"`
	TotalPages    int       `json:"totalPages"`
	TotalElements int64     `json:"totalElements,omitempty"`
	Number        int       `json:"number,omitempty"`
	Size          int       `json:"size,omitempty"`
}
