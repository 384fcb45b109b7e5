package viewsync_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/tasksync/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/tasksync/internal/adapters/http"
	"github.com/jsamuelsen11/tasksync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tasksync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/tasksync/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/tasksync/internal/app"
	"github.com/jsamuelsen11/tasksync/internal/app/session"
	"github.com/jsamuelsen11/tasksync/internal/app/viewsync"
	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/platform/auth"
	"github.com/jsamuelsen11/tasksync/internal/platform/config"
	"github.com/jsamuelsen11/tasksync/internal/platform/health"
	"github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
)

// e2eStack is the reference task API served from an in-memory database.
type e2eStack struct {
	srv  *httptest.Server
	http *httpclient.Client
}

func newE2EStack(t *testing.T) *e2eStack {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	db, err := sqlite.Open(context.Background(), config.StoreConfig{Path: sqlite.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tokens := auth.NewTokens(config.AuthConfig{
		JWTSecret: "end-to-end-test-secret",
		Issuer:    "tasksync-e2e",
		TokenTTL:  time.Hour,
	})

	registry := health.New()
	registry.Register(db)

	router := adapthttp.NewRouter(
		adapthttp.Routes{
			Tasks:       handlers.NewTaskHandler(app.NewTaskService(db.Tasks(), logger)),
			Auth:        handlers.NewAuthHandler(app.NewAccountService(db.Users(), tokens, logger)),
			Health:      handlers.NewHealthHandler(registry),
			RequireUser: middleware.Auth(tokens),
		},
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client := httpclient.New(&config.ClientConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   50,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}, "task-api", nil, logger)

	return &e2eStack{srv: srv, http: client}
}

// signIn registers username and returns a controller bound to its session.
func (s *e2eStack) signIn(t *testing.T, username string, opts ...viewsync.Option) (*viewsync.Controller, *session.Session) {
	t.Helper()
	ctx := context.Background()

	accounts := acl.NewAuthClient(s.http, slog.New(slog.DiscardHandler))
	require.NoError(t, accounts.Register(ctx, username, "secret-pass"))
	token, err := accounts.Login(ctx, username, "secret-pass")
	require.NoError(t, err)

	sess := session.New(username, token)
	tasks := acl.NewTaskClient(s.http, sess, slog.New(slog.DiscardHandler))
	return viewsync.New(tasks, pageSize, opts...), sess
}

func TestEndToEnd_ProbeSeesReadyStore(t *testing.T) {
	t.Parallel()
	stack := newE2EStack(t)

	probe := acl.NewProbe(stack.http, slog.New(slog.DiscardHandler))
	assert.NoError(t, probe.HealthCheck(context.Background()))
}

func TestEndToEnd_TaskLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	stack := newE2EStack(t)

	c, _ := stack.signIn(t, "ada")
	c.Start(ctx)
	require.Empty(t, c.Snapshot().Tasks)
	require.Equal(t, viewsync.StateIdle, c.Status().State)

	for i := 1; i <= 7; i++ {
		c.SubmitNewTask(ctx, task.Draft{Title: fmt.Sprintf("task %d", i), Category: "work"})
		require.Equal(t, viewsync.StateIdle, c.Status().State, c.Status().Message)
	}

	snap := c.Snapshot()
	assert.Equal(t, []int64{7, 6, 5, 4, 3}, ids(snap.Tasks))
	assert.Equal(t, 2, snap.TotalPages)
	assert.True(t, snap.Draft.IsZero())

	c.NextPage(ctx)
	assert.Equal(t, []int64{2, 1}, ids(c.Snapshot().Tasks))

	c.ChangeFilter(ctx, task.Filter{Status: task.StatusDone})
	assert.Empty(t, c.Snapshot().Tasks)
	assert.Equal(t, 0, c.Snapshot().Page)

	c.ChangeFilter(ctx, task.Filter{})
	c.ToggleStatus(ctx, 7)
	require.Equal(t, viewsync.StateIdle, c.Status().State, c.Status().Message)

	c.ChangeFilter(ctx, task.Filter{Status: task.StatusDone, Category: "work"})
	snap = c.Snapshot()
	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, int64(7), snap.Tasks[0].ID)
	assert.Equal(t, task.StatusDone, snap.Tasks[0].Status)

	c.RemoveTask(ctx, 7)
	assert.Empty(t, c.Snapshot().Tasks)
	assert.Equal(t, viewsync.StateIdle, c.Status().State)
}

func TestEndToEnd_ServerValidationSurfaces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	stack := newE2EStack(t)

	stack.signIn(t, "grace")

	accounts := acl.NewAuthClient(stack.http, slog.New(slog.DiscardHandler))
	err := accounts.Register(ctx, "grace", "another-pass")

	require.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is already taken", verr.Fields["username"])

	_, err = accounts.Login(ctx, "grace", "wrong-pass")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestEndToEnd_UsersAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	stack := newE2EStack(t)

	ada, _ := stack.signIn(t, "ada")
	ada.Start(ctx)
	ada.SubmitNewTask(ctx, task.Draft{Title: "private"})
	require.Len(t, ada.Snapshot().Tasks, 1)

	bob, _ := stack.signIn(t, "bob")
	bob.Start(ctx)
	assert.Empty(t, bob.Snapshot().Tasks)
}

func TestEndToEnd_EndedSessionIsUnauthenticated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	stack := newE2EStack(t)

	var expired atomic.Int32
	c, sess := stack.signIn(t, "ada", viewsync.WithUnauthenticatedHook(func() { expired.Add(1) }))
	c.Start(ctx)
	require.Equal(t, viewsync.StateIdle, c.Status().State)

	sess.End()
	c.Refresh(ctx)

	st := c.Status()
	assert.Equal(t, viewsync.StateError, st.State)
	assert.ErrorIs(t, st.Err, domain.ErrUnauthenticated)
	assert.Equal(t, int32(1), expired.Load())
}

func TestEndToEnd_ForgedTokenIsRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	stack := newE2EStack(t)

	other := auth.NewTokens(config.AuthConfig{JWTSecret: "not-the-server-secret", Issuer: "tasksync-e2e"})
	forged, err := other.Issue(auth.Principal{UserID: 1, Username: "mallory"})
	require.NoError(t, err)

	sess := session.New("mallory", forged)
	c := viewsync.New(acl.NewTaskClient(stack.http, sess, slog.New(slog.DiscardHandler)), pageSize)
	c.Start(ctx)

	assert.ErrorIs(t, c.Status().Err, domain.ErrUnauthenticated)
}
