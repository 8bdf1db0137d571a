package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewSampler(t *testing.T) {
	tests := []struct {
		name, arg string
		want      string
	}{
		{"always_on", "", trace.AlwaysSample().Description()},
		{"always_off", "", trace.NeverSample().Description()},
		{"traceidratio", "0.25", trace.TraceIDRatioBased(0.25).Description()},
		{"traceidratio", "not-a-number", trace.TraceIDRatioBased(1).Description()},
		{"parentbased_traceidratio", "0.5", trace.ParentBased(trace.TraceIDRatioBased(0.5)).Description()},
		{"unknown", "", trace.ParentBased(trace.AlwaysSample()).Description()},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, newSampler(tt.name, tt.arg).Description())
		})
	}
}

func TestInitDisabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")
	core, logs := observer.New(zap.InfoLevel)

	shutdown, err := Init(context.Background(), zap.New(core))
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	entries := logs.FilterMessage("tracing_configured").All()
	require.Len(t, entries, 1)
	assert.Equal(t, false, entries[0].ContextMap()["tracing_enabled"])
}

func TestInitUnsupportedProtocolDegrades(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")
	core, logs := observer.New(zap.InfoLevel)

	shutdown, err := Init(context.Background(), zap.New(core))
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.Equal(t, 1, logs.FilterMessage("tracing_init_failed").Len())
}
