package util

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level string, format LogFormat) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := &Logger{
		level:  ParseLogLevel(level),
		fields: make(map[string]interface{}),
	}
	logger.AddOutput(NewConsoleOutput(buf, format))
	return logger, buf
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.in), tt.in)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger("warn", FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warnf("disk at %d%%", 91)
	logger.Error("boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] disk at 91%")
	assert.Contains(t, out, "[ERROR] boom")
}

func TestLogger_TextFieldsAreSorted(t *testing.T) {
	logger, buf := newBufferLogger("debug", FormatText)

	logger.With(F("status", 200)).Info("request", F("method", "GET"), F("path", "/plans"))

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(line, "[INFO] request method=GET path=/plans status=200"), line)
}

func TestLogger_JSONFormat(t *testing.T) {
	logger, buf := newBufferLogger("info", FormatJSON)
	logger.Info("loaded", F("plans", 20))

	var entry LogEntry
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "loaded", entry.Message)
	assert.EqualValues(t, 20, entry.Fields["plans"])
}

func TestLogger_WithContext(t *testing.T) {
	logger, buf := newBufferLogger("info", FormatText)

	ctx := ContextWithRequestID(context.Background(), "abc-123")
	logger.WithContext(ctx).Info("served")
	logger.WithContext(context.Background()).Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "request_id=abc-123")
	assert.NotContains(t, lines[1], "request_id")
}

func TestNewLogger_CreatesLogDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "app.log")

	logger, err := NewLogger(LoggerConfig{Level: "info", File: path})
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] hello")
}

func TestNewLogger_RequiresAnOutput(t *testing.T) {
	_, err := NewLogger(LoggerConfig{Level: "info"})
	assert.Error(t, err)
}

func TestGlobalLogger(t *testing.T) {
	defer SetLogger(nil)

	SetLogger(nil)
	// No logger installed: helpers are silent no-ops
	LogInfof("nobody hears %s", "this")
	LogWith(F("k", "v")).Info("still silent")

	logger, buf := newBufferLogger("debug", FormatText)
	SetLogger(logger)

	LogDebugf("catalog has %d plans", 20)
	LogWith(F("source", "embedded")).Info("loaded")
	LogContext(ContextWithRequestID(context.Background(), "r1")).Warn("slow")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] catalog has 20 plans")
	assert.Contains(t, out, "[INFO] loaded source=embedded")
	assert.Contains(t, out, "[WARN] slow request_id=r1")
}
