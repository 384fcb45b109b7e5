package ports

import (
	"context"

	"github.com/jsamuelsen11/tasksync/internal/domain/query"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
)

// TaskClient defines the client port for the remote task collection.
// Implemented by the ACL adapter; called by the synchronization controller.
// Every method needs a bearer credential and returns
// domain.ErrUnauthenticated without touching the network when none is held.
type TaskClient interface {
	// List returns one page of tasks matching filter, in server order,
	// together with the total page count for that filter and page size.
	List(ctx context.Context, filter task.Filter, page, size int) (query.Page, error)

	// Create creates a task from draft and returns the server's record.
	// The server assigns the ID and defaults the status to PENDING.
	// Returns domain.ErrValidation if the server rejects the draft.
	Create(ctx context.Context, draft task.Draft) (task.Task, error)

	// Update replaces the whole record identified by t.ID and returns the
	// stored result. Returns domain.ErrNotFound if the task no longer exists.
	Update(ctx context.Context, t task.Task) (task.Task, error)

	// Delete removes a task. Returns domain.ErrNotFound if it is already gone.
	Delete(ctx context.Context, id int64) error
}

// AuthClient obtains and registers credentials against the task API.
type AuthClient interface {
	// Login exchanges a username and password for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)

	// Register creates a new account.
	Register(ctx context.Context, username, password string) error
}

// CredentialSource supplies the bearer token for outbound requests. The
// session layer owns the credential; clients only read it.
type CredentialSource interface {
	// BearerToken returns the current token, or an error wrapping
	// domain.ErrUnauthenticated when no valid token is held.
	BearerToken() (string, error)
}
