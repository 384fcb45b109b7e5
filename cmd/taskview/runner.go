package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"

	"github.com/jsamuelsen11/tasksync/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/tasksync/internal/adapters/tui"
	"github.com/jsamuelsen11/tasksync/internal/app/session"
	"github.com/jsamuelsen11/tasksync/internal/app/viewsync"
	"github.com/jsamuelsen11/tasksync/internal/platform/config"
	"github.com/jsamuelsen11/tasksync/internal/platform/health"
	"github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
	"github.com/jsamuelsen11/tasksync/internal/platform/logging"
	"github.com/jsamuelsen11/tasksync/internal/platform/telemetry"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

var _ tui.Controller = (*viewsync.Controller)(nil)

// otelShutdownTimeout bounds the final telemetry flush.
const otelShutdownTimeout = 5 * time.Second

// errNoToken is returned by commands that need a session when none was given.
var errNoToken = errors.New("not signed in: pass --token or set TASKSYNC_TOKEN (see the login command)")

// Runner holds the dependencies shared by every command.
type Runner struct {
	injector  do.Injector
	out       io.Writer
	telemetry *telemetry.Providers
}

type runnerKey struct{}

// setup loads the configuration and wires the client graph. The Runner is
// stored in the context handed to the subcommand actions.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	opts := []config.Option{
		config.WithConfigDir(cmd.String("config-dir")),
		config.WithOverride("client.base_url", cmd.String("server")),
	}
	if cmd.IsSet("dark") {
		opts = append(opts, config.WithOverride("view.dark_mode", cmd.Bool("dark")))
	}

	cfg, err := config.Load(cmd.String("profile"), opts...)
	if err != nil {
		return ctx, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	// stdout carries command output, so the console exporter writes to stderr.
	providers, err := telemetry.Setup(ctx, cfg.Telemetry, telemetry.WithConsole(os.Stderr))
	if err != nil {
		return ctx, fmt.Errorf("setting up telemetry: %w", err)
	}

	r := NewRunner(cfg, logger, os.Stdout, providers)
	return context.WithValue(ctx, runnerKey{}, r), nil
}

// teardown flushes telemetry after the subcommand. There is nothing to
// flush when setup failed before storing a Runner.
func teardown(ctx context.Context, _ *cli.Command) error {
	if r, ok := ctx.Value(runnerKey{}).(*Runner); ok {
		r.Close()
	}
	return nil
}

func runnerFrom(ctx context.Context) *Runner {
	return ctx.Value(runnerKey{}).(*Runner)
}

// NewRunner wires the client dependencies for cfg. Instruments come from
// providers, which the Runner flushes on Close.
func NewRunner(cfg *config.Config, logger *slog.Logger, out io.Writer, providers *telemetry.Providers) *Runner {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "task-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthClient, error) {
		return acl.NewAuthClient(do.MustInvoke[*httpclient.Client](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(health.WithTimeout(cfg.Client.Timeout))
		registry.Register(acl.NewProbe(do.MustInvoke[*httpclient.Client](i), logger))
		return registry, nil
	})

	return &Runner{injector: injector, out: out, telemetry: providers}
}

// Close flushes and stops the telemetry providers. A failed flush is logged
// and does not change the command's outcome.
func (r *Runner) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()
	if err := r.telemetry.Shutdown(ctx); err != nil {
		r.logger().Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func (r *Runner) config() *config.Config {
	return do.MustInvoke[*config.Config](r.injector)
}

func (r *Runner) logger() *slog.Logger {
	return do.MustInvoke[*slog.Logger](r.injector)
}

func (r *Runner) health() ports.HealthRegistry {
	return do.MustInvoke[ports.HealthRegistry](r.injector)
}

func (r *Runner) auth() ports.AuthClient {
	return do.MustInvoke[ports.AuthClient](r.injector)
}

// session opens a session for the token flag. The theme preference comes
// from the configuration.
func (r *Runner) session(cmd *cli.Command) (*session.Session, error) {
	token := strings.TrimSpace(cmd.String("token"))
	if token == "" {
		return nil, errNoToken
	}
	return session.New("", token, session.WithDarkMode(r.config().View.DarkMode)), nil
}

// taskClient returns a task client authenticated by sess.
func (r *Runner) taskClient(sess *session.Session) *acl.TaskClient {
	return acl.NewTaskClient(do.MustInvoke[*httpclient.Client](r.injector), sess, r.logger())
}

// controller builds a controller for sess. An unauthenticated response ends
// the session.
func (r *Runner) controller(sess *session.Session, logger *slog.Logger, opts ...viewsync.Option) *viewsync.Controller {
	opts = append([]viewsync.Option{
		viewsync.WithLogger(logger),
		viewsync.WithMetrics(do.MustInvoke[*telemetry.Metrics](r.injector)),
		viewsync.WithUnauthenticatedHook(sess.End),
	}, opts...)
	return viewsync.New(r.taskClient(sess), r.config().View.PageSize, opts...)
}

// screenLogger returns the logger for the terminal view. stderr belongs to
// the screen while the view runs, so records go to log.file, or nowhere
// when it is unset. The returned func closes the file.
func (r *Runner) screenLogger() (*slog.Logger, func(), error) {
	cfg := r.config()
	if cfg.Log.File == "" {
		return logging.Discard(), func() {}, nil
	}

	f, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(cfg.Log.Level, cfg.Log.Format, f), func() { _ = f.Close() }, nil
}
