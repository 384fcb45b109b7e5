package ports

import (
	"context"

	"github.com/jsamuelsen11/tasksync/internal/domain/task"
)

// TaskPage is one page of an owner's tasks as served by the reference task
// API.
type TaskPage struct {
	Tasks         []task.Task
	TotalElements int
	TotalPages    int
	Page          int
	Size          int
}

// TaskService defines the inbound port for the reference task API's task
// endpoints. Implemented by app.TaskService; called by HTTP handlers.
type TaskService interface {
	// ListTasks returns one page of the owner's tasks matching filter,
	// newest first.
	ListTasks(ctx context.Context, owner int64, filter task.Filter, page, size int) (TaskPage, error)

	// CreateTask validates and stores a new task.
	CreateTask(ctx context.Context, owner int64, t task.Task) (task.Task, error)

	// UpdateTask validates and replaces the task with ID t.ID.
	UpdateTask(ctx context.Context, owner int64, t task.Task) (task.Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, owner, id int64) error
}

// AccountService defines the inbound port for registration and login.
type AccountService interface {
	// Register creates an account.
	Register(ctx context.Context, username, password string) error

	// Login verifies credentials and returns a signed bearer token. Unknown
	// users and wrong passwords both return domain.ErrUnauthenticated.
	Login(ctx context.Context, username, password string) (string, error)
}
