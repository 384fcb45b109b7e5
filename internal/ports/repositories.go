package ports

import (
	"context"

	"github.com/jsamuelsen11/tasksync/internal/domain/task"
)

// TaskRepository is the storage port behind the reference task API.
// All methods are scoped to a single owner; another owner's task behaves as
// if it did not exist (domain.ErrNotFound).
type TaskRepository interface {
	// List returns the page of tasks matching filter, newest first, and the
	// total number of matching tasks.
	List(ctx context.Context, owner int64, filter task.Filter, page, size int) ([]task.Task, int, error)

	// Create stores a new task and returns it with its assigned ID.
	Create(ctx context.Context, owner int64, t task.Task) (task.Task, error)

	// Update replaces the stored fields of t.ID.
	Update(ctx context.Context, owner int64, t task.Task) (task.Task, error)

	// Delete removes the task.
	Delete(ctx context.Context, owner int64, id int64) error
}

// User is an account known to the reference task API.
type User struct {
	ID           int64
	Username     string
	PasswordHash []byte
}

// UserRepository stores accounts for the reference task API.
type UserRepository interface {
	// Create stores a new user. Returns domain.ErrValidation when the
	// username is already taken.
	Create(ctx context.Context, username string, passwordHash []byte) (User, error)

	// FindByUsername returns domain.ErrNotFound for unknown usernames.
	FindByUsername(ctx context.Context, username string) (User, error)
}
