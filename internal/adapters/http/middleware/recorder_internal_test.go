package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestRecord_TracksStatusAndBytes(t *testing.T) {
	t.Parallel()

	rec := record(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, rec.status, "nothing written means 200")

	rec.WriteHeader(http.StatusCreated)
	rec.WriteHeader(http.StatusTeapot)
	_, _ = rec.Write([]byte("hello"))
	_, _ = rec.Write([]byte(" world"))

	assert.Equal(t, http.StatusCreated, rec.status, "only the first status counts")
	assert.Equal(t, int64(11), rec.bytes)
	assert.True(t, rec.wroteHeader)
}

func TestRecord_WriteImpliesHeader(t *testing.T) {
	t.Parallel()

	rec := record(httptest.NewRecorder())
	_, _ = rec.Write([]byte("x"))

	assert.True(t, rec.wroteHeader)
	assert.Equal(t, http.StatusOK, rec.status)
}

func TestRecord_ReusesOuterRecorder(t *testing.T) {
	t.Parallel()

	outer := record(httptest.NewRecorder())
	assert.Same(t, outer, record(outer))
}

func TestRecord_Unwrap(t *testing.T) {
	t.Parallel()

	base := httptest.NewRecorder()
	assert.Same(t, base, record(base).Unwrap())
}

func TestRoute(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPut, "/api/tasks/42", http.NoBody)
	assert.Equal(t, "/api/tasks/42", route(r), "outside chi the raw path is used")

	var seen string
	router := chi.NewRouter()
	router.Route("/api", func(api chi.Router) {
		api.Put("/tasks/{id}", func(_ http.ResponseWriter, r *http.Request) { seen = route(r) })
	})
	router.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "/api/tasks/{id}", seen)
}
