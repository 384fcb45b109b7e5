package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	acltask "github.com/jsamuelsen11/tasksync/internal/adapters/clients/acl/task"
	"github.com/jsamuelsen11/tasksync/internal/domain/query"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskClient = (*TaskClient)(nil)

const tasksPath = "/api/tasks"

// TaskClient is the outbound adapter for the task API's /api/tasks
// resource. It implements [ports.TaskClient].
//
// Wire shapes are translated by the [acltask] subpackage; HTTP errors are
// mapped to domain errors by [TranslateHTTPError]. The client keeps no
// state of its own beyond the shared transport.
type TaskClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewTaskClient creates a TaskClient that sends requests through the given
// [httpclient.Client] and authenticates with creds. The client's BaseURL
// should point to the API root (e.g. "http://localhost:8080").
func NewTaskClient(client *httpclient.Client, creds ports.CredentialSource, logger *slog.Logger) *TaskClient {
	return &TaskClient{
		req:    NewRequester(client, creds, logger),
		logger: logger,
	}
}

// List fetches one page from GET /api/tasks?page=&size=&status=&category=.
// Unset filter dimensions are not sent.
func (c *TaskClient) List(ctx context.Context, filter task.Filter, page, size int) (query.Page, error) {
	state := query.State{Filter: filter, Page: page, Size: size}
	if err := state.Validate(); err != nil {
		return query.Page{}, err
	}

	path := tasksPath + "?" + state.Values().Encode()

	var dto acltask.PageDTO
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return query.Page{}, err
	}
	return acltask.ToDomainPage(&dto)
}

// Create sends POST /api/tasks and returns the created record.
func (c *TaskClient) Create(ctx context.Context, draft task.Draft) (task.Task, error) {
	var dto acltask.TaskDTO
	if err := c.req.Do(ctx, http.MethodPost, tasksPath, acltask.ToCreateRequest(draft), &dto); err != nil {
		return task.Task{}, err
	}
	return acltask.ToDomainTask(&dto)
}

// Update sends PUT /api/tasks/{id} with the full record and returns the
// stored result.
func (c *TaskClient) Update(ctx context.Context, t task.Task) (task.Task, error) {
	var dto acltask.TaskDTO
	if err := c.req.Do(ctx, http.MethodPut, taskPath(t.ID), acltask.ToUpdateRequest(t), &dto); err != nil {
		return task.Task{}, err
	}
	return acltask.ToDomainTask(&dto)
}

// Delete sends DELETE /api/tasks/{id}. Any response body is ignored.
func (c *TaskClient) Delete(ctx context.Context, id int64) error {
	return c.req.Do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id int64) string {
	return fmt.Sprintf("%s/%d", tasksPath, id)
}
