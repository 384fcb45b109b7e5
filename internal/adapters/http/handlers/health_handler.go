package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/tasksync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasksync/internal/platform/logging"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// HealthHandler serves the probe endpoints used by orchestrators and by
// `taskview status`.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is the check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthReport{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready: 200 when every registered
// dependency passes, 503 otherwise. Both carry the per-check breakdown.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report := dto.ToReadinessReport(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if failing := report.Failing(); len(failing) > 0 {
		code = http.StatusServiceUnavailable
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.Any("failing", failing),
		)
	}
	writeJSON(w, r, code, report)
}
