// Package telemetry sets up OpenTelemetry tracing and metrics. Spans and
// metrics go to stdout during development or to an OTLP/HTTP collector.
//
//	p, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer p.Shutdown(ctx)
//	metrics := p.Metrics
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/tasksync/internal/platform/config"
)

// Exporter names accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Providers owns the global providers Setup installed.
type Providers struct {
	Metrics *Metrics

	shutdown []func(context.Context) error
}

// Option configures Setup.
type Option func(*target)

// WithConsole sends the stdout exporter's output to w instead of os.Stdout.
func WithConsole(w io.Writer) Option {
	return func(t *target) {
		t.console = w
	}
}

// Setup installs global tracer and meter providers and the W3C propagators
// for cfg. When telemetry is disabled nothing global changes and Metrics
// record nothing.
func Setup(ctx context.Context, cfg config.TelemetryConfig, opts ...Option) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{Metrics: NewNopMetrics()}, nil
	}
	target, err := parseTarget(cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(&target)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	p := &Providers{}

	spans, err := target.spanExporter(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	p.shutdown = append(p.shutdown, tp.Shutdown)

	readings, err := target.metricExporter(ctx)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)), sdkmetric.WithResource(res))
	p.shutdown = append(p.shutdown, mp.Shutdown)

	if p.Metrics, err = NewMetrics(mp, cfg.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return p, nil
}

// Shutdown flushes and stops every provider. Safe on a disabled Providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	for _, stop := range p.shutdown {
		errs = append(errs, stop(ctx))
	}
	return errors.Join(errs...)
}

// target is where telemetry is exported.
type target struct {
	otlp    bool
	host    string
	secure  bool
	console io.Writer // stdout exporter destination
}

func parseTarget(exporter, endpoint string) (target, error) {
	switch exporter {
	case ExporterStdout:
		return target{console: os.Stdout}, nil
	case ExporterOTLP:
		if endpoint == "" {
			return target{}, errors.New("otlp exporter requires an endpoint")
		}
		t := target{otlp: true, host: endpoint}
		if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
			t.host, t.secure = u.Host, u.Scheme == "https"
		}
		return t, nil
	default:
		return target{}, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

func (t target) spanExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if !t.otlp {
		return stdouttrace.New(stdouttrace.WithWriter(t.console), stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(t.host)}
	if !t.secure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func (t target) metricExporter(ctx context.Context) (sdkmetric.Exporter, error) {
	if !t.otlp {
		return stdoutmetric.New(stdoutmetric.WithWriter(t.console))
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(t.host)}
	if !t.secure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}
