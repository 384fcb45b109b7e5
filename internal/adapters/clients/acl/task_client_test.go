package acl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/tasksync/internal/app/session"
	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/platform/config"
	"github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
)

const testToken = "test-token"

// staticCreds is a CredentialSource returning a fixed token or error.
type staticCreds struct {
	token string
	err   error
}

func (c staticCreds) BearerToken() (string, error) { return c.token, c.err }

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "task-api-test", nil, slog.New(slog.DiscardHandler))
}

func newTaskClient(t *testing.T, baseURL string) *TaskClient {
	t.Helper()
	return NewTaskClient(newTestClient(t, baseURL), staticCreds{token: testToken}, slog.New(slog.DiscardHandler))
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func TestTaskClient_List(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tasks", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "5", q.Get("size"))
		assert.Equal(t, "DONE", q.Get("status"))
		assert.Equal(t, "work", q.Get("category"))

		writeJSON(t, w, map[string]any{
			"content": []map[string]any{
				{"id": 12, "title": "Ship release", "description": "", "category": "work", "status": "Done"},
				{"id": 4, "title": "Write notes", "description": "d", "category": "work", "status": "DONE"},
			},
			"totalPages":    3,
			"totalElements": 12,
		})
	}))
	t.Cleanup(ts.Close)

	client := newTaskClient(t, ts.URL)
	page, err := client.List(context.Background(), task.Filter{Status: task.StatusDone, Category: "work"}, 1, 5)
	require.NoError(t, err)

	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Tasks, 2)
	assert.Equal(t, int64(12), page.Tasks[0].ID)
	assert.Equal(t, task.StatusDone, page.Tasks[0].Status)
	assert.Equal(t, int64(4), page.Tasks[1].ID)
}

func TestTaskClient_List_OmitsUnsetFilters(t *testing.T) {
	t.Parallel()

	var gotQuery atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.RawQuery)
		writeJSON(t, w, map[string]any{"content": []any{}, "totalPages": 0})
	}))
	t.Cleanup(ts.Close)

	client := newTaskClient(t, ts.URL)
	page, err := client.List(context.Background(), task.Filter{}, 0, 5)
	require.NoError(t, err)

	assert.Equal(t, "page=0&size=5", gotQuery.Load())
	assert.Empty(t, page.Tasks)
	assert.Equal(t, 0, page.TotalPages)
}

func TestTaskClient_List_InvalidPageNoRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	client := newTaskClient(t, ts.URL)
	_, err := client.List(context.Background(), task.Filter{}, -1, 5)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, calls.Load())
}

func TestTaskClient_Create(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tasks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Buy milk", body["title"])
		assert.Equal(t, "home", body["category"])
		_, hasStatus := body["status"]
		assert.False(t, hasStatus, "status must be omitted so the server applies its default")

		w.WriteHeader(http.StatusCreated)
		writeJSON(t, w, map[string]any{
			"id": 99, "title": "Buy milk", "description": "", "category": "home", "status": "PENDING",
		})
	}))
	t.Cleanup(ts.Close)

	client := newTaskClient(t, ts.URL)
	got, err := client.Create(context.Background(), task.Draft{Title: "Buy milk", Category: "home"})
	require.NoError(t, err)

	assert.Equal(t, task.Task{ID: 99, Title: "Buy milk", Category: "home", Status: task.StatusPending}, got)
}

func TestTaskClient_Update_SendsFullRecord(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/tasks/7", r.URL.Path)

		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"id":7,"title":"t","description":"d","category":"c","status":"DONE"}`, string(raw))

		_, _ = w.Write(raw)
	}))
	t.Cleanup(ts.Close)

	client := newTaskClient(t, ts.URL)
	in := task.Task{ID: 7, Title: "t", Description: "d", Category: "c", Status: task.StatusDone}
	got, err := client.Update(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestTaskClient_Delete(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/tasks/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(ts.Close)

	client := newTaskClient(t, ts.URL)
	require.NoError(t, client.Delete(context.Background(), 42))
}

func TestTaskClient_Delete_IgnoresBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Task deleted"))
	}))
	t.Cleanup(ts.Close)

	client := newTaskClient(t, ts.URL)
	require.NoError(t, client.Delete(context.Background(), 1))
}

func TestTaskClient_MissingCredentialNoRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	tests := []struct {
		name  string
		creds staticCreds
	}{
		{name: "credential source fails", creds: staticCreds{err: domain.ErrUnauthenticated}},
		{name: "credential source fails with foreign error", creds: staticCreds{err: errors.New("keyring locked")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewTaskClient(newTestClient(t, ts.URL), tt.creds, slog.New(slog.DiscardHandler))

			_, err := client.List(context.Background(), task.Filter{}, 0, 5)
			require.ErrorIs(t, err, domain.ErrUnauthenticated)

			_, err = client.Create(context.Background(), task.Draft{Title: "x"})
			require.ErrorIs(t, err, domain.ErrUnauthenticated)

			_, err = client.Update(context.Background(), task.Task{ID: 1, Title: "x", Status: task.StatusDone})
			require.ErrorIs(t, err, domain.ErrUnauthenticated)

			require.ErrorIs(t, client.Delete(context.Background(), 1), domain.ErrUnauthenticated)
		})
	}

	assert.Zero(t, calls.Load())
}

func TestTaskClient_EndedSessionNoRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var gotAuth atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		gotAuth.Store(r.Header.Get("Authorization"))
		writeJSON(t, w, map[string]any{"content": []any{}, "totalPages": 0})
	}))
	t.Cleanup(ts.Close)

	sess := session.New("alice", "session-token")
	client := NewTaskClient(newTestClient(t, ts.URL), sess, slog.New(slog.DiscardHandler))

	_, err := client.List(context.Background(), task.Filter{}, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", gotAuth.Load())

	sess.End()

	_, err = client.List(context.Background(), task.Filter{}, 0, 5)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTaskClient_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  error
		wantKind domain.Kind
	}{
		{name: "401", status: http.StatusUnauthorized, wantErr: domain.ErrUnauthenticated, wantKind: domain.KindUnauthenticated},
		{name: "403", status: http.StatusForbidden, wantErr: domain.ErrUnauthenticated, wantKind: domain.KindUnauthenticated},
		{name: "404", status: http.StatusNotFound, wantErr: domain.ErrNotFound, wantKind: domain.KindNotFound},
		{
			name:     "400 with message",
			status:   http.StatusBadRequest,
			body:     `{"message":"Title is required"}`,
			wantErr:  domain.ErrValidation,
			wantKind: domain.KindValidation,
		},
		{name: "500", status: http.StatusInternalServerError, wantErr: domain.ErrServer, wantKind: domain.KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(ts.Close)

			client := newTaskClient(t, ts.URL)
			_, err := client.Update(context.Background(), task.Task{ID: 3, Title: "x", Status: task.StatusDone})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
		})
	}
}

func TestTaskClient_ServerErrorStatus(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(ts.Close)

	client := newTaskClient(t, ts.URL)
	_, err := client.List(context.Background(), task.Filter{}, 0, 5)

	var serr *domain.ServerError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusServiceUnavailable, serr.Status)
}

func TestTaskClient_NetworkError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close()

	client := newTaskClient(t, url)
	_, err := client.List(context.Background(), task.Filter{}, 0, 5)

	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
}

func TestTaskClient_DecodeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "not JSON", body: "<html>oops</html>"},
		{name: "empty body", body: ""},
		{name: "unknown status", body: `{"content":[{"id":1,"title":"x","status":"ARCHIVED"}],"totalPages":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(ts.Close)

			client := newTaskClient(t, ts.URL)
			_, err := client.List(context.Background(), task.Filter{}, 0, 5)
			require.ErrorIs(t, err, domain.ErrDecode)
		})
	}
}
