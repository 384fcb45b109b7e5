package ports

import "context"

// HealthChecker is one dependency a readiness check covers: the SQLite
// store in the task API, or the task API itself as seen from taskview.
type HealthChecker interface {
	Name() string

	// HealthCheck returns nil when the dependency can serve. It must give up
	// when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them together.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll maps each checker's name to its outcome; nil is healthy.
	CheckAll(ctx context.Context) map[string]error
}
