package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

var _ ports.HealthChecker = (*Probe)(nil)

const readinessPath = "/health/ready"

// Probe asks the task API whether it is ready to serve. It registers with a
// health registry under the name "task-api".
type Probe struct {
	req *Requester
}

// NewProbe creates a Probe. Readiness needs no credentials.
func NewProbe(client *httpclient.Client, logger *slog.Logger) *Probe {
	return &Probe{req: NewRequester(client, nil, logger)}
}

func (p *Probe) Name() string {
	return "task-api"
}

// HealthCheck fails fast while the circuit breaker is open and otherwise
// calls GET /health/ready. A 503 from the server surfaces as a
// *domain.ServerError.
func (p *Probe) HealthCheck(ctx context.Context) error {
	if state := p.req.BreakerState(); state == "open" {
		return fmt.Errorf("%w: circuit breaker %s", domain.ErrNetwork, state)
	}
	return p.req.Do(ctx, http.MethodGet, readinessPath, nil, nil)
}
