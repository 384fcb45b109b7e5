// Package main runs the reference task API, the HTTP backend the task view
// synchronizes against. It drains in-flight requests on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/tasksync/internal/adapters/http"
	"github.com/jsamuelsen11/tasksync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tasksync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/tasksync/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/tasksync/internal/app"
	"github.com/jsamuelsen11/tasksync/internal/platform/auth"
	"github.com/jsamuelsen11/tasksync/internal/platform/config"
	"github.com/jsamuelsen11/tasksync/internal/platform/health"
	"github.com/jsamuelsen11/tasksync/internal/platform/logging"
	"github.com/jsamuelsen11/tasksync/internal/platform/telemetry"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

const (
	storeOpenTimeout    = 10 * time.Second
	otelShutdownTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("validating server config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)

	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	db := do.MustInvoke[*sqlite.DB](injector)
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("closing store", slog.Any("error", err))
		}
	}()
	do.MustInvoke[ports.HealthRegistry](injector).Register(db)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*sqlite.DB, error) {
		ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
		defer cancel()
		return sqlite.Open(ctx, cfg.Store)
	})

	do.Provide(injector, func(_ do.Injector) (*auth.Tokens, error) {
		return auth.NewTokens(cfg.Auth), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		db := do.MustInvoke[*sqlite.DB](i)
		return app.NewTaskService(db.Tasks(), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccountService, error) {
		db := do.MustInvoke[*sqlite.DB](i)
		tokens := do.MustInvoke[*auth.Tokens](i)
		return app.NewAccountService(db.Users(), tokens, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithTimeout(cfg.Server.RequestTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		return handlers.NewTaskHandler(do.MustInvoke[ports.TaskService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AuthHandler, error) {
		return handlers.NewAuthHandler(do.MustInvoke[ports.AccountService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		tokens := do.MustInvoke[*auth.Tokens](i)

		return adapthttp.NewRouter(
			adapthttp.Routes{
				Tasks:       do.MustInvoke[*handlers.TaskHandler](i),
				Auth:        do.MustInvoke[*handlers.AuthHandler](i),
				Health:      do.MustInvoke[*handlers.HealthHandler](i),
				RequireUser: middleware.Auth(tokens),
			},
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.AccessLog(logger),
			middleware.Deadline(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
