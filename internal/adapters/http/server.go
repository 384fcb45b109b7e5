package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/tasksync/internal/platform/config"
)

// fallbackDrain applies when server.shutdown_timeout is zero.
const fallbackDrain = 10 * time.Second

// Server serves the task API until its context ends, then drains.
type Server struct {
	srv    *http.Server
	drain  time.Duration
	logger *slog.Logger

	ready chan struct{}
	addr  string // set before ready is closed
}

// NewServer builds a Server for cfg. A nil logger discards.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	drain := cfg.ShutdownTimeout
	if drain <= 0 {
		drain = fallbackDrain
	}

	return &Server{
		srv: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		drain:  drain,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Run listens and serves until ctx is canceled, then stops accepting
// connections and waits up to the drain timeout for in-flight requests.
// It returns nil after a clean drain.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	s.addr = ln.Addr().String()
	close(s.ready)
	s.logger.Info("serving", slog.String("addr", s.addr))

	served := make(chan error, 1)
	go func() { served <- s.srv.Serve(ln) }()

	select {
	case err := <-served:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("draining", slog.Duration("timeout", s.drain))
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.drain)
	defer cancel()

	if err := s.srv.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("draining: %w", err)
	}
	if err := <-served; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// Ready is closed once the listener is bound.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr is the bound address once Ready is closed, and the configured one
// before that.
func (s *Server) Addr() string {
	select {
	case <-s.ready:
		return s.addr
	default:
		return s.srv.Addr
	}
}
