package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// defaultScope names the meter when NewMetrics is given no scope.
const defaultScope = "github.com/jsamuelsen11/tasksync"

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("operation")
)

// Values of AttrResult shared by the HTTP and sync instruments.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics are the instruments recorded across both binaries.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// Task view synchronization.
	FetchTotal      metric.Int64Counter
	FetchSuperseded metric.Int64Counter
	MutationTotal   metric.Int64Counter
}

// NewMetrics creates every instrument on a meter named scope, or on the
// module's meter when scope is empty.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	if scope == "" {
		scope = defaultScope
	}
	meter := mp.Meter(scope)
	m := &Metrics{}

	durations := map[string]*metric.Float64Histogram{
		"http.server.request.duration": &m.ServerRequestDuration,
		"http.client.request.duration": &m.ClientRequestDuration,
	}
	for name, dst := range durations {
		h, err := meter.Float64Histogram(name, metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", name, err)
		}
		*dst = h
	}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		unit string
		help string
	}{
		{&m.ServerRequestTotal, "http.server.request.total", "{request}", "Requests served"},
		{&m.ClientRequestTotal, "http.client.request.total", "{request}", "Requests sent to the task API"},
		{&m.FetchTotal, "tasksync.fetch.total", "{fetch}", "Task list fetches by result"},
		{&m.FetchSuperseded, "tasksync.fetch.superseded", "{fetch}", "Fetch responses dropped because a newer fetch was issued"},
		{&m.MutationTotal, "tasksync.mutation.total", "{mutation}", "Task mutations by operation and result"},
	}
	for _, c := range counters {
		ctr, err := meter.Int64Counter(c.name, metric.WithUnit(c.unit), metric.WithDescription(c.help))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		*c.dst = ctr
	}

	return m, nil
}

// NewNopMetrics returns instruments that record nothing.
func NewNopMetrics() *Metrics {
	m, err := NewMetrics(noop.NewMeterProvider(), "")
	if err != nil {
		panic(err) // the noop provider cannot fail
	}
	return m
}
