package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/tasksync/internal/adapters/http"
	"github.com/jsamuelsen11/tasksync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasksync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tasksync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/tasksync/internal/platform/auth"
	"github.com/jsamuelsen11/tasksync/internal/platform/config"
	"github.com/jsamuelsen11/tasksync/internal/ports"
	"github.com/jsamuelsen11/tasksync/mocks"
)

type fixture struct {
	handler  http.Handler
	tasks    *mocks.MockTaskService
	accounts *mocks.MockAccountService
	registry *mocks.MockHealthRegistry
	tokens   *auth.Tokens
}

func newFixture(t *testing.T, mws ...func(http.Handler) http.Handler) *fixture {
	t.Helper()
	f := &fixture{
		tasks:    mocks.NewMockTaskService(t),
		accounts: mocks.NewMockAccountService(t),
		registry: mocks.NewMockHealthRegistry(t),
		tokens: auth.NewTokens(config.AuthConfig{
			JWTSecret: "router-test-secret",
			Issuer:    "tasksync-test",
			TokenTTL:  time.Hour,
		}),
	}
	f.handler = adapthttp.NewRouter(adapthttp.Routes{
		Tasks:       handlers.NewTaskHandler(f.tasks),
		Auth:        handlers.NewAuthHandler(f.accounts),
		Health:      handlers.NewHealthHandler(f.registry),
		RequireUser: middleware.Auth(f.tokens),
	}, mws...)
	return f
}

func (f *fixture) serve(t *testing.T, method, target, body, authz string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) bearer(t *testing.T) string {
	t.Helper()
	raw, err := f.tokens.Issue(auth.Principal{UserID: 3, Username: "ada"})
	require.NoError(t, err)
	return "Bearer " + raw
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	mux, ok := newFixture(t).handler.(chi.Routes)
	require.True(t, ok)

	var got []string
	require.NoError(t, chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	}))

	assert.ElementsMatch(t, []string{
		"GET /health/live",
		"GET /health/ready",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/tasks",
		"POST /api/tasks",
		"PUT /api/tasks/{id}",
		"DELETE /api/tasks/{id}",
	}, got)
}

func TestRouter_MiddlewaresWrapEveryRoute(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	f := newFixture(t, tag("outer"), tag("inner"))
	rec := f.serve(t, http.MethodGet, "/health/live", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestRouter_TasksNeedBearerToken(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/tasks"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodPut, "/api/tasks/1"},
		{http.MethodDelete, "/api/tasks/1"},
	} {
		rec := f.serve(t, tc.method, tc.target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.target)
	}
}

func TestRouter_ListTasksAsUser(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.tasks.EXPECT().ListTasks(mock.Anything, int64(3), mock.Anything, 0, 5).Return(ports.TaskPage{Size: 5}, nil)

	rec := f.serve(t, http.MethodGet, "/api/tasks", "", f.bearer(t))

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRouter_AuthRoutesArePublic(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.accounts.EXPECT().Login(mock.Anything, "ada", "secret1").Return("tok", nil)

	rec := f.serve(t, http.MethodPost, "/api/auth/login", `{"username":"ada","password":"secret1"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRouter_UnknownPathIsProblem(t *testing.T) {
	t.Parallel()

	rec := newFixture(t).serve(t, http.MethodGet, "/nowhere", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, dto.ProblemContentType, rec.Header().Get("Content-Type"))

	var problem dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))
	assert.Equal(t, http.StatusNotFound, problem.Status)
	assert.Contains(t, problem.Detail, "/nowhere")
}

func TestRouter_WrongMethod(t *testing.T) {
	t.Parallel()

	rec := newFixture(t).serve(t, http.MethodPatch, "/api/auth/login", "", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
