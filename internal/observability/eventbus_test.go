package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/pronto/internal/observability"
)

func TestEventBus_Publish(t *testing.T) {
	t.Run("should log event with data and context fields", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		bus := observability.NewEventBus(zap.New(core))

		ctx := observability.WithRequestID(context.Background(), "req-1")
		ctx = observability.WithModel(ctx, "gpt-4o")

		bus.Publish(ctx, "run.dispatched", map[string]interface{}{
			"outcome":  "success",
			"provider": "openai",
		})

		entries := logs.All()
		require.Len(t, entries, 1)

		fields := entries[0].ContextMap()
		require.Equal(t, "run.dispatched", fields["event"])
		require.Equal(t, "success", fields["outcome"])
		require.Equal(t, "openai", fields["provider"])
		require.Equal(t, "req-1", fields["request_id"])
		require.Equal(t, "gpt-4o", fields["model"])
	})

	t.Run("should do nothing without a logger", func(t *testing.T) {
		bus := observability.NewEventBus(nil)
		require.NotPanics(t, func() {
			bus.Publish(context.Background(), "noop", nil)
		})
	})
}

func TestFromContext(t *testing.T) {
	t.Run("should attach context identifiers", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		observability.SetLogger(zap.New(core))
		t.Cleanup(func() { observability.SetLogger(nil) })

		ctx := observability.WithTraceID(context.Background(), "trace-1")
		ctx = observability.WithProvider(ctx, "anthropic")

		observability.FromContext(ctx).Info("hello")

		entries := logs.All()
		require.Len(t, entries, 1)
		require.Equal(t, "trace-1", entries[0].ContextMap()["trace_id"])
		require.Equal(t, "anthropic", entries[0].ContextMap()["provider"])
	})

	t.Run("should emit job id and skip empty keys", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		observability.SetLogger(zap.New(core))
		t.Cleanup(func() { observability.SetLogger(nil) })

		ctx := observability.WithJobID(context.Background(), "vid_1")
		ctx = observability.WithModel(ctx, "")

		observability.FromContext(ctx).Info("hello")

		fields := logs.All()[0].ContextMap()
		require.Equal(t, map[string]interface{}{"job_id": "vid_1"}, fields)
		require.Equal(t, "vid_1", observability.GetJobID(ctx))
	})
}

func TestGenerateIDs(t *testing.T) {
	t.Run("should produce hex trace and span ids", func(t *testing.T) {
		require.Len(t, observability.GenerateTraceID(), 32)
		require.Len(t, observability.GenerateSpanID(), 16)
		require.NotEqual(t, observability.GenerateRequestID(), observability.GenerateRequestID())
	})
}

func TestInitLogger(t *testing.T) {
	t.Run("should reject unknown level", func(t *testing.T) {
		_, err := observability.InitLogger(&observability.LogConfig{Level: "loud"})
		require.Error(t, err)
	})

	t.Run("should build logger for valid level", func(t *testing.T) {
		logger, err := observability.InitLogger(&observability.LogConfig{Level: "debug"})
		require.NoError(t, err)
		require.NotNil(t, logger)
		require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})
}
