// Package viewsync keeps a locally rendered page of tasks consistent with
// the remote task collection while the user changes filters, moves between
// pages, and creates, toggles or deletes tasks.
//
// The Controller owns the view query, the current page, the synchronization
// status and the new-task draft. Presentation code sends intents (Refresh,
// ChangeFilter, ChangePage, SubmitNewTask, ToggleStatus, RemoveTask) and
// renders the snapshots pushed to its listeners.
//
// Ordering rules:
//
//   - Every fetch is tagged with a sequence number. Only the response of the
//     most recently issued fetch is applied; older responses are discarded.
//   - Every mutation records the query generation when it is issued. Its
//     local effect (in-place replace, local removal) is applied only if the
//     query has not changed since. The reconciling refresh that follows a
//     successful mutation is always issued.
//
// No error escapes an intent. Failures become an error Status with a
// user-facing message and the previously rendered page stays visible.
package viewsync

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/query"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/platform/logging"
	"github.com/jsamuelsen11/tasksync/internal/platform/telemetry"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// maxClampRefetches bounds how many times a refresh follows itself after
// pulling an out-of-range page back into range. The total can keep
// shrinking while other clients delete tasks.
const maxClampRefetches = 3

// Operation names used in logs and the mutation metric.
const (
	opRefresh = "refresh"
	opCreate  = "create"
	opToggle  = "toggle"
	opDelete  = "delete"
)

// Controller is the synchronization controller. It is safe for concurrent
// use; its mutex is never held across a call to the task client.
type Controller struct {
	client   ports.TaskClient
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	onUnauth func()

	notifyMu sync.Mutex // serializes listener delivery

	mu         sync.Mutex
	query      query.State
	page       query.Page
	status     Status
	draft      task.Draft
	version    uint64
	pending    int            // operations in flight
	fetchSeq   uint64         // sequence number of the latest issued fetch
	generation uint64         // bumped on every query change
	deleting   map[int64]int  // outstanding deletes per task ID
	removed    map[int64]bool // IDs deleted here and possibly still listed
	listeners  []Listener
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the metric instruments. Defaults to no-op instruments.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Controller) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithUnauthenticatedHook registers fn to run whenever an operation fails
// because the session is no longer authenticated. The session layer uses it
// to end the session. fn runs outside the controller's lock.
func WithUnauthenticatedHook(fn func()) Option {
	return func(c *Controller) {
		c.onUnauth = fn
	}
}

// WithListener registers a change listener at construction time.
func WithListener(l Listener) Option {
	return func(c *Controller) {
		if l != nil {
			c.listeners = append(c.listeners, l)
		}
	}
}

// New creates a Controller for pages of pageSize tasks. A non-positive
// pageSize falls back to query.DefaultPageSize. The controller starts idle
// with an empty page; call Start to load the first page.
func New(client ports.TaskClient, pageSize int, opts ...Option) *Controller {
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}

	c := &Controller{
		client:   client,
		logger:   logging.Discard(),
		metrics:  telemetry.NewNopMetrics(),
		query:    query.New(pageSize),
		page:     query.Page{Tasks: []task.Task{}},
		status:   Status{State: StateIdle},
		deleting: make(map[int64]int),
		removed:  make(map[int64]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers a listener that receives a snapshot after every change.
func (c *Controller) OnChange(l Listener) {
	if l == nil {
		return
	}
	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()
}

// Snapshot returns a copy of the current view state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Status returns the current synchronization status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Query returns the current view query.
func (c *Controller) Query() query.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Start loads the first page.
func (c *Controller) Start(ctx context.Context) {
	c.Refresh(ctx)
}

// Refresh fetches the current page for the current query.
func (c *Controller) Refresh(ctx context.Context) {
	c.fetch(ctx, nil, 0)
}

// ChangeFilter replaces the filter, resets the page to 0 and refreshes.
// Setting the same filter again still refreshes.
func (c *Controller) ChangeFilter(ctx context.Context, f task.Filter) {
	next := c.Query().WithFilter(f)
	if err := next.Validate(); err != nil {
		c.reject(ctx, "ChangeFilter", err)
		return
	}

	c.fetch(ctx, func(q *query.State) bool {
		*q = q.WithFilter(f)
		return true
	}, 0)
}

// ChangePage moves to page index and refreshes. The filter is untouched.
// An index the last known total cannot satisfy is rejected with a
// validation error and no request is sent.
func (c *Controller) ChangePage(ctx context.Context, index int) {
	var rejected bool
	c.fetch(ctx, func(q *query.State) bool {
		if !query.InRange(index, c.page.TotalPages) {
			rejected = true
			return false
		}
		*q = q.WithPage(index)
		return true
	}, 0)

	if rejected {
		c.reject(ctx, "ChangePage", &domain.ValidationError{Fields: map[string]string{
			"page": "is out of range",
		}})
	}
}

// NextPage moves one page forward when there is one.
func (c *Controller) NextPage(ctx context.Context) {
	c.ChangePage(ctx, c.Query().Page+1)
}

// PrevPage moves one page back when there is one.
func (c *Controller) PrevPage(ctx context.Context) {
	c.ChangePage(ctx, c.Query().Page-1)
}

// SetDraft stores the new-task form fields.
func (c *Controller) SetDraft(d task.Draft) {
	c.mu.Lock()
	c.draft = d
	c.version++
	c.mu.Unlock()
	c.notify()
}

// fetch issues a List call for the current query. When mutate is non-nil it
// is applied to the query under the same lock that assigns the fetch its
// sequence number; returning false aborts the fetch without touching state.
// depth counts clamp-triggered refetches.
func (c *Controller) fetch(ctx context.Context, mutate func(*query.State) bool, depth int) {
	c.mu.Lock()
	if mutate != nil {
		if !mutate(&c.query) {
			c.mu.Unlock()
			return
		}
		c.generation++
	}
	c.fetchSeq++
	seq := c.fetchSeq
	q := c.query
	c.beginLocked()
	c.mu.Unlock()
	c.notify()

	page, err := c.client.List(ctx, q.Filter, q.Page, q.Size)

	c.mu.Lock()
	c.pending--

	if seq != c.fetchSeq {
		c.settleLocked()
		c.mu.Unlock()

		c.metrics.FetchSuperseded.Add(ctx, 1)
		c.logger.DebugContext(ctx, "discarding superseded fetch",
			slog.String("operation", opRefresh),
			slog.Uint64("seq", seq),
			slog.Int("page", q.Page),
		)
		c.notify()
		return
	}

	if err != nil {
		c.failLocked(err)
		c.mu.Unlock()

		c.recordFetch(ctx, err)
		c.afterFailure(ctx, opRefresh, err, slog.Int("page", q.Page))
		c.notify()
		return
	}

	c.page = page.Clone()
	if c.page.Tasks == nil {
		c.page.Tasks = []task.Task{}
	}
	c.forgetRemovedLocked()

	refetch := !query.InRange(q.Page, page.TotalPages) && depth < maxClampRefetches
	gen := c.generation
	c.settleLocked()
	c.mu.Unlock()

	c.recordFetch(ctx, nil)
	c.notify()

	if refetch {
		c.logger.DebugContext(ctx, "page out of range after refresh, clamping",
			slog.String("operation", opRefresh),
			slog.Int("page", q.Page),
			slog.Int("total_pages", page.TotalPages),
		)
		c.fetch(ctx, func(cur *query.State) bool {
			if c.generation != gen {
				// The user moved on; their own fetch is already in flight.
				return false
			}
			clamped := cur.Clamp(page.TotalPages)
			if clamped == *cur {
				return false
			}
			*cur = clamped
			return true
		}, depth+1)
	}
}

// forgetRemovedLocked drops deleted IDs the current page no longer lists
// and no delete is still waiting on. Such an ID can no longer be the target
// of RemoveTask, so a late not-found for it cannot arrive.
func (c *Controller) forgetRemovedLocked() {
	for id := range c.removed {
		if c.deleting[id] == 0 && c.page.Index(id) < 0 {
			delete(c.removed, id)
		}
	}
}

// reject surfaces a client-side validation failure without any request.
func (c *Controller) reject(ctx context.Context, operation string, err error) {
	c.mu.Lock()
	c.failLocked(err)
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "intent rejected",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
	c.notify()
}

// beginLocked marks an operation as started. Starting any operation clears
// a previous error.
func (c *Controller) beginLocked() {
	c.pending++
	c.status = Status{State: StateLoading}
	c.version++
}

// settleLocked records a successful (or discarded) completion. An error set
// by another operation since the last begin stays visible.
func (c *Controller) settleLocked() {
	c.version++
	if c.status.State == StateError {
		return
	}
	if c.pending > 0 {
		c.status = Status{State: StateLoading}
		return
	}
	c.status = Status{State: StateIdle}
}

func (c *Controller) failLocked(err error) {
	c.version++
	c.status = Status{State: StateError, Err: err, Message: userMessage(err)}
}

// afterFailure logs err and fires the unauthenticated hook when needed.
// Must be called without the lock held.
func (c *Controller) afterFailure(ctx context.Context, operation string, err error, attrs ...any) {
	args := append([]any{slog.String("operation", operation)}, attrs...)
	args = append(args, slog.String("kind", domain.KindOf(err).String()), slog.Any("error", err))
	c.logger.WarnContext(ctx, "task operation failed", args...)

	if domain.KindOf(err) == domain.KindUnauthenticated && c.onUnauth != nil {
		c.onUnauth()
	}
}

func (c *Controller) recordFetch(ctx context.Context, err error) {
	c.metrics.FetchTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result(err))))
}

func (c *Controller) recordMutation(ctx context.Context, operation string, err error) {
	c.metrics.MutationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result(err)),
	))
}

func result(err error) string {
	if err != nil {
		return telemetry.ResultError
	}
	return telemetry.ResultSuccess
}

func (c *Controller) snapshotLocked() Snapshot {
	tasks := make([]task.Task, len(c.page.Tasks))
	copy(tasks, c.page.Tasks)

	return Snapshot{
		Version:    c.version,
		Tasks:      tasks,
		Page:       c.query.Page,
		TotalPages: c.page.TotalPages,
		PageSize:   c.query.Size,
		Filter:     c.query.Filter,
		Loading:    c.status.State == StateLoading,
		Error:      c.status.Message,
		Status:     c.status,
		Draft:      c.draft,
	}
}

// notify delivers the current snapshot to every listener. Delivery is
// serialized so listeners observe snapshots in version order.
func (c *Controller) notify() {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if len(c.listeners) == 0 {
		c.mu.Unlock()
		return
	}
	snap := c.snapshotLocked()
	listeners := make([]Listener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}
