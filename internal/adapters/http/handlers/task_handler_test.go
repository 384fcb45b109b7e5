package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/tasksync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasksync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/ports"
	"github.com/jsamuelsen11/tasksync/mocks"
)

func newTaskHandler(t *testing.T) (*handlers.TaskHandler, *mocks.MockTaskService) {
	t.Helper()
	svc := mocks.NewMockTaskService(t)
	return handlers.NewTaskHandler(svc), svc
}

// --- ListTasks ---

func TestListTasks_Defaults(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().ListTasks(mock.Anything, testOwner, task.Filter{}, 0, 5).
		Return(ports.TaskPage{Tasks: []task.Task{validTask()}, TotalElements: 1, TotalPages: 1, Size: 5}, nil)

	rec := httptest.NewRecorder()
	req := asOwner(httptest.NewRequest(http.MethodGet, "/api/tasks", nil))
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.PageResponse](t, rec)
	if len(resp.Content) != 1 || resp.Content[0].Title != "Buy groceries" {
		t.Errorf("Content = %+v, want the one task", resp.Content)
	}
	if resp.TotalPages != 1 || resp.TotalElements != 1 || resp.Size != 5 {
		t.Errorf("page meta = %+v", resp)
	}
}

func TestListTasks_ParsesQuery(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	want := task.Filter{Status: task.StatusDone, Category: "work"}
	svc.EXPECT().ListTasks(mock.Anything, testOwner, want, 2, 10).
		Return(ports.TaskPage{Page: 2, Size: 10}, nil)

	rec := httptest.NewRecorder()
	req := asOwner(httptest.NewRequest(http.MethodGet, "/api/tasks?page=2&size=10&status=done&category=work", nil))
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if body := rec.Body.String(); !bytes.Contains([]byte(body), []byte(`"content":[]`)) {
		t.Errorf("body = %s, want an empty content array", body)
	}
}

func TestListTasks_BadQuery(t *testing.T) {
	t.Parallel()

	for _, target := range []string{
		"/api/tasks?status=LATER",
		"/api/tasks?page=abc",
		"/api/tasks?size=x",
	} {
		t.Run(target, func(t *testing.T) {
			t.Parallel()
			h, _ := newTaskHandler(t)

			rec := httptest.NewRecorder()
			h.ListTasks(rec, asOwner(httptest.NewRequest(http.MethodGet, target, nil)))

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

func TestListTasks_ReportsEveryBadParameter(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	h.ListTasks(rec, asOwner(httptest.NewRequest(http.MethodGet, "/api/tasks?page=one&size=two&status=maybe", nil)))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	fields := map[string]bool{}
	for _, e := range resp.Errors {
		fields[strings.TrimPrefix(e.Location, "body.")] = true
	}
	for _, want := range []string{"page", "size", "status"} {
		if !fields[want] {
			t.Errorf("Errors = %+v, missing %q", resp.Errors, want)
		}
	}
}

func TestListTasks_NoPrincipal(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	h.ListTasks(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestListTasks_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().ListTasks(mock.Anything, testOwner, mock.Anything, mock.Anything, mock.Anything).
		Return(ports.TaskPage{}, errors.New("disk I/O error"))

	rec := httptest.NewRecorder()
	h.ListTasks(rec, asOwner(httptest.NewRequest(http.MethodGet, "/api/tasks", nil)))

	requireStatus(t, rec, http.StatusInternalServerError)
	if bytes.Contains(rec.Body.Bytes(), []byte("disk")) {
		t.Errorf("body leaks storage error: %s", rec.Body.String())
	}
}

// --- CreateTask ---

func TestCreateTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	created := validTask()
	svc.EXPECT().CreateTask(mock.Anything, testOwner, mock.MatchedBy(func(in task.Task) bool {
		return in.ID == 0 && in.Title == "Buy groceries" && in.Category == "home"
	})).Return(created, nil)

	body := jsonBody(t, dto.TaskRequest{Title: "  Buy groceries ", Description: "Milk, eggs, bread", Category: "home"})
	rec := httptest.NewRecorder()
	req := asOwner(httptest.NewRequest(http.MethodPost, "/api/tasks", body))
	req.Header.Set("Content-Type", "application/json")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ID != 1 || resp.Status != "PENDING" {
		t.Errorf("resp = %+v, want id 1 PENDING", resp)
	}
}

func TestCreateTask_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := asOwner(httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString("{bad")))
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateTask_BlankTitle(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := asOwner(httptest.NewRequest(http.MethodPost, "/api/tasks", jsonBody(t, dto.TaskRequest{Title: "   "})))
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.title" {
		t.Errorf("Errors = %+v, want one title error", resp.Errors)
	}
}

// --- UpdateTask ---

func TestUpdateTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	updated := validTask()
	updated.ID = 9
	updated.Status = task.StatusDone
	svc.EXPECT().UpdateTask(mock.Anything, testOwner, mock.MatchedBy(func(in task.Task) bool {
		return in.ID == 9 && in.Status == task.StatusDone
	})).Return(updated, nil)

	body := jsonBody(t, dto.TaskRequest{ID: 123, Title: "Buy groceries", Status: "done"})
	rec := httptest.NewRecorder()
	req := asOwner(httptest.NewRequest(http.MethodPut, "/api/tasks/9", body))
	req = withChiParams(req, map[string]string{"id": "9"})
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ID != 9 || resp.Status != "DONE" {
		t.Errorf("resp = %+v, want id 9 DONE", resp)
	}
}

func TestUpdateTask_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := asOwner(httptest.NewRequest(http.MethodPut, "/api/tasks/abc", jsonBody(t, dto.TaskRequest{Title: "x"})))
	req = withChiParams(req, map[string]string{"id": "abc"})
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateTask_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().UpdateTask(mock.Anything, testOwner, mock.Anything).
		Return(task.Task{}, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := asOwner(httptest.NewRequest(http.MethodPut, "/api/tasks/4", jsonBody(t, dto.TaskRequest{Title: "x"})))
	req = withChiParams(req, map[string]string{"id": "4"})
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- DeleteTask ---

func TestDeleteTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().DeleteTask(mock.Anything, testOwner, int64(3)).Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(asOwner(httptest.NewRequest(http.MethodDelete, "/api/tasks/3", nil)), map[string]string{"id": "3"})
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().DeleteTask(mock.Anything, testOwner, int64(3)).Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(asOwner(httptest.NewRequest(http.MethodDelete, "/api/tasks/3", nil)), map[string]string{"id": "3"})
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
