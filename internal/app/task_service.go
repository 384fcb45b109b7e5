// Package app provides the reference task API's application services. They
// validate input, scope every call to the authenticated owner, and log
// failures, delegating storage to the repository ports.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/query"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// MaxPageSize caps the page size a client may request.
const MaxPageSize = 100

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService on top of a TaskRepository.
type TaskService struct {
	repo   ports.TaskRepository
	logger *slog.Logger
}

// NewTaskService creates a TaskService. A nil logger discards output.
func NewTaskService(repo ports.TaskRepository, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{repo: repo, logger: logger}
}

// ListTasks returns one page of the owner's tasks, newest first.
func (s *TaskService) ListTasks(ctx context.Context, owner int64, filter task.Filter, page, size int) (ports.TaskPage, error) {
	q := query.State{Filter: filter, Page: page, Size: size}
	if err := q.Validate(); err != nil {
		return ports.TaskPage{}, err
	}
	if size > MaxPageSize {
		return ports.TaskPage{}, &domain.ValidationError{Fields: map[string]string{
			"size": fmt.Sprintf("must be at most %d", MaxPageSize),
		}}
	}

	tasks, total, err := s.repo.List(ctx, owner, filter, page, size)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.Int64("owner_id", owner),
			slog.Any("error", err),
		)
		return ports.TaskPage{}, err
	}

	return ports.TaskPage{
		Tasks:         tasks,
		TotalElements: total,
		TotalPages:    query.TotalPagesFor(total, size),
		Page:          page,
		Size:          size,
	}, nil
}

// CreateTask validates and stores a new task. A missing status defaults to
// PENDING.
func (s *TaskService) CreateTask(ctx context.Context, owner int64, t task.Task) (task.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.String("title", t.Title))

	if t.Status == "" {
		t.Status = task.StatusPending
	}
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}

	created, err := s.repo.Create(ctx, owner, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.Int64("owner_id", owner),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	return created, nil
}

// UpdateTask validates and replaces the task with ID t.ID.
func (s *TaskService) UpdateTask(ctx context.Context, owner int64, t task.Task) (task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.Int64("id", t.ID))

	if t.Status == "" {
		t.Status = task.StatusPending
	}
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}

	updated, err := s.repo.Update(ctx, owner, t)
	if err != nil {
		s.logFailure(ctx, "UpdateTask", owner, t.ID, err)
		return task.Task{}, err
	}

	return updated, nil
}

// DeleteTask removes a task.
func (s *TaskService) DeleteTask(ctx context.Context, owner, id int64) error {
	s.logger.InfoContext(ctx, "deleting task", slog.Int64("id", id))

	if err := s.repo.Delete(ctx, owner, id); err != nil {
		s.logFailure(ctx, "DeleteTask", owner, id, err)
		return err
	}
	return nil
}

// logFailure logs at warn for a missing task and at error for everything
// else.
func (s *TaskService) logFailure(ctx context.Context, operation string, owner, id int64, err error) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "task operation failed",
		slog.String("operation", operation),
		slog.Int64("owner_id", owner),
		slog.Int64("id", id),
		slog.Any("error", err),
	)
}
