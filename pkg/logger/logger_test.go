package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))
	assert.Empty(t, GetImportID(ctx))
	assert.Empty(t, GetUserID(ctx))

	ctx = WithTraceID(ctx, "trace-1")
	ctx = WithImportID(ctx, "import-1")
	ctx = WithUserID(ctx, "user-1")

	assert.Equal(t, "trace-1", GetTraceID(ctx))
	assert.Equal(t, "import-1", GetImportID(ctx))
	assert.Equal(t, "user-1", GetUserID(ctx))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestLogger_AddsContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	ctx := WithImportID(WithTraceID(context.Background(), "trace-9"), "import-9")
	log.Info(ctx, "Import committed",
		"created", 3,
		"error", errors.New("boom"),
		42, "ignored key",
		"dangling",
	)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "trace-9", fields["trace_id"])
	assert.Equal(t, "import-9", fields["import_id"])
	assert.Equal(t, int64(3), fields["created"])
	assert.Equal(t, "boom", fields["error"])
	assert.NotContains(t, fields, "user_id")
	assert.NotContains(t, fields, "dangling")
}
