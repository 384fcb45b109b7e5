package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/tasksync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/query"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/platform/auth"
	"github.com/jsamuelsen11/tasksync/internal/platform/logging"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

const msgInteger = "must be a valid integer"

// fieldErrors gathers per-field problems so a request with several bad
// parameters gets one 400 naming all of them.
type fieldErrors map[string]string

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: f}
}

// listParams is the parsed query string of GET /api/tasks.
type listParams struct {
	filter task.Filter
	page   int
	size   int
}

// parseListParams reads page, size, status and category. Absent values take
// their defaults; range checks are left to the service.
func parseListParams(r *http.Request) (listParams, error) {
	q := r.URL.Query()
	bad := fieldErrors{}

	intParam := func(name string, def int) int {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			bad[name] = msgInteger
		}
		return v
	}

	p := listParams{
		filter: task.Filter{Category: strings.TrimSpace(q.Get("category"))},
		page:   intParam("page", 0),
		size:   intParam("size", query.DefaultPageSize),
	}
	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		s, ok := task.ParseStatus(raw)
		if !ok {
			bad["status"] = fmt.Sprintf("invalid: %q", raw)
		}
		p.filter.Status = s
	}

	if err := bad.err(); err != nil {
		return listParams{}, err
	}
	return p, nil
}

// pathID reads the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fieldErrors{"id": msgInteger}.err()
	}
	return id, nil
}

// ownerFrom returns the authenticated user's ID. Routes behind the auth
// middleware always have one.
func ownerFrom(r *http.Request) (int64, error) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return 0, fmt.Errorf("%w: no authenticated user", domain.ErrUnauthenticated)
	}
	return p.UserID, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response",
			slog.Any("error", err),
		)
	}
}

type validatable interface {
	Validate() error
}

// bind decodes the body into dst and validates it. On failure the error
// response is already written and bind reports false.
func bind[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, fieldErrors{"body": "invalid JSON"}.err())
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
