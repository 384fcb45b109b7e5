package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/platform/auth"
)

const testOwner int64 = 7

// withChiParams sets route parameters the way chi's router would.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asOwner attaches the principal the auth middleware would normally set.
func asOwner(r *http.Request) *http.Request {
	return r.WithContext(auth.WithPrincipal(r.Context(), auth.Principal{UserID: testOwner, Username: "ada"}))
}

func validTask() task.Task {
	return task.Task{
		ID:          1,
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		Category:    "home",
		Status:      task.StatusPending,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return &buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out), "body: %s", rec.Body.String())
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
