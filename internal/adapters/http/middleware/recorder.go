// Package middleware holds the request pipeline of the reference task API.
// cmd/taskapi installs it in this order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, AccessLog, Deadline
//
// and Auth on the task routes only.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// recorder remembers the status and body size written through it. Nested
// middleware share one recorder so the outermost sees what the handler did.
type recorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func record(w http.ResponseWriter) *recorder {
	if rec, ok := w.(*recorder); ok {
		return rec
	}
	return &recorder{ResponseWriter: w, status: http.StatusOK}
}

func (rec *recorder) WriteHeader(code int) {
	if rec.wroteHeader {
		return
	}
	rec.status = code
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	rec.wroteHeader = true
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the connection.
func (rec *recorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// route returns the matched chi pattern ("/api/tasks/{id}") so logs and
// spans do not fan out per task ID. Outside a chi router, or before
// routing, it falls back to the raw path.
func route(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
