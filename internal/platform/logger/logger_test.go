// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/userdir-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetup verifies that Setup honours the configured level and installs the default logger.
func TestSetup(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &logger.TestLogBuffer{}
	l, err := logger.Setup(logger.LoggerConfig{Level: "warn", Output: buf})
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("info test message")
	slog.Warn("warn test message")

	assert.NotContains(t, buf.String(), "info test message", "info must be filtered at warn level")
	logger.AssertLogContains(t, buf, "warn test message")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
}

// TestSetupInvalidLevel verifies that an unknown level falls back to info.
func TestSetupInvalidLevel(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &logger.TestLogBuffer{}
	l, err := logger.Setup(logger.LoggerConfig{Level: "invalid_level", Output: buf})
	require.NoError(t, err)

	l.Debug("debug test message")
	l.Info("info test message")

	assert.NotContains(t, buf.String(), "debug test message")
	assert.Contains(t, buf.String(), "info test message")
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"fatal", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := logger.ParseLevel(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestContextLogger(t *testing.T) {
	l, buf := logger.GetTestLogger(t)
	fallback := slog.New(slog.NewTextHandler(&logger.TestLogBuffer{}, nil))

	t.Run("empty context uses fallback", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("stored logger wins", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), l)
		assert.Same(t, l, logger.FromContextOrDefault(ctx, fallback))
		assert.Same(t, l, logger.FromContext(ctx))
	})

	t.Run("request id enriches logger", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), l)
		ctx = logger.WithRequestID(ctx, "req-123")

		assert.Equal(t, "req-123", logger.RequestIDFromContext(ctx))
		logger.FromContext(ctx).Info("with request")
		logger.AssertLogContains(t, buf, `"request_id":"req-123"`)
	})
}
