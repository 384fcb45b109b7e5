// Package http is the inbound HTTP adapter of the reference task API.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/tasksync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasksync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tasksync/internal/domain"
)

// Routes is everything the router mounts.
type Routes struct {
	Tasks  *handlers.TaskHandler
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler

	// RequireUser guards /api/tasks.
	RequireUser func(http.Handler) http.Handler
}

// NewRouter mounts routes behind middlewares, which run outermost first.
// Unknown paths get a problem document rather than chi's plain text.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("%w: no route for %s", domain.ErrNotFound, req.URL.Path))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", routes.Health.Liveness)
		r.Get("/ready", routes.Health.Readiness)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", routes.Auth.Register)
		r.Post("/auth/login", routes.Auth.Login)

		tasks := r.With(routes.RequireUser)
		tasks.Get("/tasks", routes.Tasks.ListTasks)
		tasks.Post("/tasks", routes.Tasks.CreateTask)
		tasks.Put("/tasks/{id}", routes.Tasks.UpdateTask)
		tasks.Delete("/tasks/{id}", routes.Tasks.DeleteTask)
	})

	return r
}
