package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup_DisabledIsNoop(t *testing.T) {
	before := otel.GetTracerProvider()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"no endpoint", Config{Enabled: true, ServiceName: "netitem"}},
		{"disabled", Config{Endpoint: "http://localhost:4318", Enabled: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := Setup(context.Background(), tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, shutdown)
			assert.NoError(t, shutdown(context.Background()))
			assert.Equal(t, before, otel.GetTracerProvider())
		})
	}
}

func TestSetup_RegistersProvider(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	shutdown, err := Setup(context.Background(), Config{
		Endpoint:    "http://127.0.0.1:4318",
		Enabled:     true,
		ServiceName: "netitem-test",
	})
	require.NoError(t, err)
	assert.NotEqual(t, before, otel.GetTracerProvider())

	// Nothing was recorded, so shutdown has no spans to push.
	assert.NoError(t, shutdown(context.Background()))
}
