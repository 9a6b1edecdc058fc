package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContextAndFromContext(t *testing.T) {
	logger := zap.NewNop()
	ctx := WithContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got)
}

func TestFromContextMissing(t *testing.T) {
	got := FromContext(context.Background())
	require.NotNil(t, got)
	// No-op logger must be safe to use
	got.Info("ignored")
}

func TestWithRequestID(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx, enriched := WithRequestID(context.Background(), logger, "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))

	enriched.Info("hello")
	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
}

func TestGetRequestIDMissing(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestL(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx := WithContext(context.Background(), logger)
	ctx = context.WithValue(ctx, RequestIDKey, "req-456")

	L(ctx).Info("from L")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-456", entries[0].ContextMap()["request_id"])
}
