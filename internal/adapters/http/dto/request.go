package dto

import (
	"strings"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
)

// TaskRequest is the JSON body of POST /api/tasks and PUT /api/tasks/{id}.
// The id field is accepted and ignored; the path identifies the task on
// update.
type TaskRequest struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status,omitempty"`
}

// Validate checks the fields against the task rules. A status may be sent
// in any letter case; an empty status is allowed and defaults to PENDING.
func (r *TaskRequest) Validate() error {
	t := r.toTask()
	if r.Status == "" {
		t.Status = task.StatusPending
	}
	return t.Validate()
}

// ToTask converts the request to a domain task. Whitespace around text
// fields is trimmed.
func (r *TaskRequest) ToTask(id int64) task.Task {
	t := r.toTask()
	t.ID = id
	return t
}

func (r *TaskRequest) toTask() task.Task {
	t := task.Task{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Category:    strings.TrimSpace(r.Category),
		Status:      task.Status(r.Status),
	}
	if s, ok := task.ParseStatus(r.Status); ok {
		t.Status = s
	}
	return t
}

// CredentialsRequest is the JSON body of the register and login endpoints.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both fields are present. Finer account rules are
// enforced by the account service.
func (r *CredentialsRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	if r.Password == "" {
		fields["password"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
