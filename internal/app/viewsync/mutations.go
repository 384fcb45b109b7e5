package viewsync

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
)

// SubmitNewTask creates a task from draft. A draft that fails validation
// (blank title, over-long fields) becomes an error status and nothing is
// sent. On success the draft is cleared, unless it was edited while the
// request was in flight, and the page is refreshed; the new task is not
// appended locally. On failure the draft is kept.
func (c *Controller) SubmitNewTask(ctx context.Context, draft task.Draft) {
	normalized := draft.Normalize()

	c.mu.Lock()
	c.draft = draft
	if err := normalized.Validate(); err != nil {
		c.failLocked(err)
		c.mu.Unlock()

		c.logger.DebugContext(ctx, "new task rejected",
			slog.String("operation", opCreate),
			slog.Any("error", err),
		)
		c.notify()
		return
	}
	c.beginLocked()
	c.mu.Unlock()
	c.notify()

	created, err := c.client.Create(ctx, normalized)

	c.mu.Lock()
	c.pending--
	if err != nil {
		c.failLocked(err)
		c.mu.Unlock()

		c.recordMutation(ctx, opCreate, err)
		c.afterFailure(ctx, opCreate, err, slog.String("title", normalized.Title))
		c.notify()
		return
	}
	if c.draft == draft {
		c.draft = task.Draft{}
	}
	c.settleLocked()
	c.mu.Unlock()

	c.recordMutation(ctx, opCreate, nil)
	c.logger.InfoContext(ctx, "task created",
		slog.String("operation", opCreate),
		slog.Int64("task_id", created.ID),
	)
	c.notify()

	c.Refresh(ctx)
}

// ToggleStatus flips the status of the task with the given ID between
// PENDING and DONE. The task is looked up in the current page; an ID that is
// not on the page is ignored. The full record is sent, the returned record
// replaces the local one in place, and the page is refreshed.
func (c *Controller) ToggleStatus(ctx context.Context, id int64) {
	c.mu.Lock()
	i := c.page.Index(id)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	toggled := c.page.Tasks[i].Toggled()
	gen := c.generation
	c.beginLocked()
	c.mu.Unlock()
	c.notify()

	updated, err := c.client.Update(ctx, toggled)

	c.mu.Lock()
	c.pending--
	if err != nil {
		c.failLocked(err)
		c.mu.Unlock()

		c.recordMutation(ctx, opToggle, err)
		c.afterFailure(ctx, opToggle, err, slog.Int64("task_id", id))
		c.notify()
		return
	}
	if gen == c.generation {
		if j := c.page.Index(id); j >= 0 {
			c.page.Tasks[j] = updated
		}
	}
	c.settleLocked()
	c.mu.Unlock()

	c.recordMutation(ctx, opToggle, nil)
	c.notify()

	c.Refresh(ctx)
}

// RemoveTask deletes the task with the given ID. An ID that is not on the
// current page is ignored. On success the task is removed locally at once
// and the page is refreshed. A not-found answer is treated as success when
// this controller already deleted the task or has another delete of the
// same ID in flight.
func (c *Controller) RemoveTask(ctx context.Context, id int64) {
	c.mu.Lock()
	if c.page.Index(id) < 0 {
		c.mu.Unlock()
		return
	}
	gen := c.generation
	c.deleting[id]++
	c.beginLocked()
	c.mu.Unlock()
	c.notify()

	err := c.client.Delete(ctx, id)

	c.mu.Lock()
	c.pending--
	c.deleting[id]--
	concurrent := c.deleting[id] > 0
	if !concurrent {
		delete(c.deleting, id)
	}

	if errors.Is(err, domain.ErrNotFound) && (c.removed[id] || concurrent) {
		c.logger.DebugContext(ctx, "task already deleted by this session",
			slog.String("operation", opDelete),
			slog.Int64("task_id", id),
		)
		err = nil
	}

	if err != nil {
		c.failLocked(err)
		c.mu.Unlock()

		c.recordMutation(ctx, opDelete, err)
		c.afterFailure(ctx, opDelete, err, slog.Int64("task_id", id))
		c.notify()
		return
	}

	c.removed[id] = true
	if gen == c.generation {
		if j := c.page.Index(id); j >= 0 {
			c.page.Tasks = append(c.page.Tasks[:j:j], c.page.Tasks[j+1:]...)
		}
	}
	c.settleLocked()
	c.mu.Unlock()

	c.recordMutation(ctx, opDelete, nil)
	c.notify()

	c.Refresh(ctx)
}
