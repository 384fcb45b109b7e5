// Package httpclient is the outbound transport for the task API. Each call
// passes through, in order:
//
//	circuit breaker, rate limiter, identifier headers, client span, retries
//
// Only idempotent methods are replayed. A POST gets one attempt whatever the
// retry policy says, so a create is never duplicated by the transport.
package httpclient

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/tasksync/internal/platform/config"
	"github.com/jsamuelsen11/tasksync/internal/platform/telemetry"
)

const (
	tracerName = "github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
	userAgent  = "tasksync-httpclient/1"

	resultCircuitOpen = "circuit_open"
)

// Client sends requests to one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	peer    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter
	retry   policy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client from cfg. peer names the downstream service in spans,
// metrics and breaker logs. metrics may be nil.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		peer:    peer,
		retry:   newPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}

	trip := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        peer,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= trip
		},
		OnStateChange: c.breakerMoved,
	})

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}

	return c
}

// Do sends req and returns the downstream response.
//
// A nil error means the status was not retryable and the caller owns
// resp.Body. When retries run out on a retryable status, both the last
// response and an error come back so the caller can still read the status.
// A rejected breaker, a limiter wait cut short by ctx or a transport
// failure returns a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	began := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		var err error
		resp, err = c.send(ctx, req)
		return struct{}{}, err
	})

	c.observe(ctx, req.Method, time.Since(began), resp, err)
	return resp, err
}

// BaseURL is the API root requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BreakerState reports "closed", "half-open" or "open".
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	stamp(ctx, req)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.peer,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL.String()),
			attribute.String("peer.service", c.peer),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.attempts(ctx, req.WithContext(ctx))

	if resp != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return resp, err
}

// stamp sets the identifier headers. A request ID is always sent; the
// correlation ID only when the caller supplied one.
func stamp(ctx context.Context, req *http.Request) {
	id := RequestIDFromContext(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	req.Header.Set(HeaderRequestID, id)

	if corr := CorrelationIDFromContext(ctx); corr != "" {
		req.Header.Set(HeaderCorrelationID, corr)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
}

func (c *Client) breakerMoved(name string, from, to gobreaker.State) {
	c.logger.Warn("circuit breaker state change",
		slog.String("breaker", name),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
}

// observe records the call outside the breaker so rejected calls are
// counted too.
func (c *Client) observe(ctx context.Context, method string, took time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, telemetry.ResultError
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = telemetry.ResultSuccess
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = resultCircuitOpen
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.peer),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, took.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
