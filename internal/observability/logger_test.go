package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-noise/internal/config"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLog := NewLogger(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&buf))

	logger.Info("generated", zap.Int("samples", 8000))
	logger.Debug("hidden")
	require.NoError(t, closeLog())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "debug entries must be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "generated", entry["msg"])
	assert.Equal(t, ServiceName, entry["logger"])
	assert.EqualValues(t, 8000, entry["samples"])
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLog := NewLogger(config.LoggerConfig{Level: "debug", Format: "console"}, zapcore.AddSync(&buf))

	logger.Debug("visible")
	require.NoError(t, closeLog())

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewLoggerConsoleColor(t *testing.T) {
	tests := []struct {
		mode      string
		wantColor bool
	}{
		{mode: "", wantColor: false},
		{mode: config.ColorAuto, wantColor: false},
		{mode: config.ColorNever, wantColor: false},
		{mode: config.ColorAlways, wantColor: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			var buf bytes.Buffer
			logger, closeLog := NewLogger(
				config.LoggerConfig{Level: "info", Format: "console", Color: tt.mode},
				zapcore.AddSync(&buf),
			)
			logger.Info("hello")
			require.NoError(t, closeLog())

			assert.Equal(t, tt.wantColor, bytes.Contains(buf.Bytes(), []byte("\x1b[")), "output %q", buf.String())
		})
	}
}

func TestNewLoggerAutoColorSkipsRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stderr.log"))
	require.NoError(t, err)
	defer f.Close()

	logger, closeLog := NewLogger(config.LoggerConfig{Level: "info", Format: "console", Color: config.ColorAuto}, f)
	logger.Warn("redirected")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "WARN")
	assert.NotContains(t, string(data), "\x1b[")
}

func TestNewLoggerInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, closeLog := NewLogger(config.LoggerConfig{Level: "loud", Format: "json"}, zapcore.AddSync(&buf))

	logger.Debug("hidden")
	logger.Info("shown")
	require.NoError(t, closeLog())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noisegen.log")
	var buf bytes.Buffer
	logger, closeLog := NewLogger(config.LoggerConfig{Level: "info", Format: "console", File: path, MaxSize: 1}, zapcore.AddSync(&buf))

	logger.Info("to file")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)

	require.NoError(t, closeLog(), "second close")
}
