package telemetry

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint string
		want     target
	}{
		{"http://otel-collector:4318", target{otlp: true, host: "otel-collector:4318"}},
		{"https://otel.example.com", target{otlp: true, host: "otel.example.com", secure: true}},
		{"otel-collector:4318", target{otlp: true, host: "otel-collector:4318"}},
	}
	for _, tt := range tests {
		got, err := parseTarget(ExporterOTLP, tt.endpoint)
		require.NoError(t, err, tt.endpoint)
		assert.Equal(t, tt.want, got, tt.endpoint)
	}

	stdout, err := parseTarget(ExporterStdout, "ignored")
	require.NoError(t, err)
	assert.False(t, stdout.otlp)
	assert.Same(t, os.Stdout, stdout.console)
}
