package telemetry_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"monolith-service/internal/config"
	"monolith-service/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		tel, err := telemetry.Init(ctx, config.TelemetryConfig{Enabled: false}, "monolith-service", "test", logger)
		require.NoError(t, err)

		assert.Nil(t, tel.MeterProvider)
		require.NotNil(t, tel.Metrics)
		assert.NotPanics(t, func() { tel.Metrics.RecordCreated(ctx, "project") })
		assert.NoError(t, tel.Shutdown(ctx, logger))
	})

	t.Run("NilShutdown", func(t *testing.T) {
		var tel *telemetry.Telemetry
		assert.NoError(t, tel.Shutdown(ctx, logger))
	})
}
