package logger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jonesrussell/north-cloud/techintel/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_AppliesDefaults(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"", logger.FormatJSON, logger.FormatConsole} {
		l, err := logger.New(logger.Config{Format: format})
		require.NoError(t, err)
		require.NotNil(t, l)
		l.Debug("filtered at info level")
	}
}

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	cfg := logger.Config{}
	cfg.SetDefaults()

	assert.Equal(t, logger.DefaultLevel, cfg.Level)
	assert.Equal(t, logger.FormatJSON, cfg.Format)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  bool
	}{
		{"debug", true},
		{"INFO", true},
		{"warning", true},
		{"error", true},
		{"fatal", true},
		{"verbose", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.ValidLevel(tt.level))
		})
	}
}

func TestNewFromZap_WritesFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.NewFromZap(zap.New(core)).With(logger.String("run_id", "abc"))

	l.Warn("fetch failed",
		logger.String("source", "Azure Blog"),
		logger.Int("articles", 0),
		logger.Error(errors.New("timeout")),
	)

	entries := logs.FilterMessage("fetch failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "abc", fields["run_id"])
	assert.Equal(t, "Azure Blog", fields["source"])
	assert.Equal(t, "timeout", fields["error"])
}

func TestWithContext_FromContext_RoundTrip(t *testing.T) {
	t.Parallel()

	nop := logger.NewNop()
	ctx := logger.WithContext(context.Background(), nop)

	assert.Same(t, nop, logger.FromContext(ctx))
}

func TestFromContext_NoLogger_ReturnsFallback(t *testing.T) {
	t.Parallel()

	got := logger.FromContext(context.Background())
	require.NotNil(t, got)
	got.Warn("fallback is usable", logger.String("key", "value"))
	assert.Same(t, got, logger.FromContext(context.Background()))
}
