package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskRepository = (*TaskRepository)(nil)

// TaskRepository stores tasks.
type TaskRepository struct {
	db *sql.DB
}

// List returns one page of the owner's tasks matching filter, newest first,
// and the total number of matches. Both filter dimensions apply together.
func (r *TaskRepository) List(ctx context.Context, owner int64, filter task.Filter, page, size int) ([]task.Task, int, error) {
	where := []string{"owner_id = ?"}
	args := []any{owner}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filter.Status.String())
	}
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting tasks: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, description, category, status FROM tasks WHERE "+cond+" ORDER BY id DESC LIMIT ? OFFSET ?",
		append(args, size, page*size)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		var (
			t      task.Task
			status string
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Category, &status); err != nil {
			return nil, 0, fmt.Errorf("scanning task: %w", err)
		}
		t.Status = task.Status(status)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("listing tasks: %w", err)
	}

	return tasks, total, nil
}

// Create stores t for owner and returns it with its new ID.
func (r *TaskRepository) Create(ctx context.Context, owner int64, t task.Task) (task.Task, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks (owner_id, title, description, category, status) VALUES (?, ?, ?, ?, ?)",
		owner, t.Title, t.Description, t.Category, t.Status.String(),
	)
	if err != nil {
		return task.Task{}, fmt.Errorf("inserting task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return task.Task{}, fmt.Errorf("reading task id: %w", err)
	}
	t.ID = id
	return t, nil
}

// Update replaces the stored fields of t.ID. A task owned by someone else
// is reported as not found.
func (r *TaskRepository) Update(ctx context.Context, owner int64, t task.Task) (task.Task, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET title = ?, description = ?, category = ?, status = ? WHERE id = ? AND owner_id = ?",
		t.Title, t.Description, t.Category, t.Status.String(), t.ID, owner,
	)
	if err != nil {
		return task.Task{}, fmt.Errorf("updating task %d: %w", t.ID, err)
	}
	if err := requireOneRow(res, t.ID); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Delete removes the task. A task owned by someone else is reported as not
// found.
func (r *TaskRepository) Delete(ctx context.Context, owner int64, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND owner_id = ?", id, owner)
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	return requireOneRow(res, id)
}

func requireOneRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
