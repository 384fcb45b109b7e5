// Package health keeps the dependencies a readiness check covers. The task
// API registers its store; taskview registers a probe of the task API.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/tasksync/internal/platform/fanout"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry runs its checkers in parallel, each under its own deadline.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// Option configures a Registry.
type Option func(*Registry)

// WithTimeout bounds each check. Zero, the default, leaves checks to the
// caller's context.
func WithTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker. Safe for concurrent use with CheckAll.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	r.checkers = append(r.checkers, checker)
	r.mu.Unlock()
}

// CheckAll returns each checker's outcome keyed by name; nil means healthy.
// If two checkers share a name, the one registered last is reported.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, len(checkers), checkers, r.check)

	report := make(map[string]error, len(checkers))
	for i, c := range checkers {
		report[c.Name()] = outcomes[i].Err
	}
	return report
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
	if r.timeout <= 0 {
		return struct{}{}, c.HealthCheck(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	if err := c.HealthCheck(ctx); err != nil {
		if ctx.Err() != nil {
			return struct{}{}, fmt.Errorf("no answer within %s: %w", r.timeout, err)
		}
		return struct{}{}, err
	}
	return struct{}{}, nil
}
