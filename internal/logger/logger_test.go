package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	defer func() { Logger = zap.NewNop() }()

	require.NoError(t, Init("debug", ""))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init("warn", ""))
	assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))

	err := Init("verbose", "")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNew_WritesConsoleAndFile(t *testing.T) {
	var console bytes.Buffer
	file := filepath.Join(t.TempDir(), "app.log")

	log := New(zapcore.InfoLevel, zapcore.AddSync(&console), file)
	log.Debug("hidden")
	log.Info("course completed", zap.String("course_id", "1"))
	require.NoError(t, log.Sync())

	assert.Contains(t, console.String(), "course completed")
	assert.NotContains(t, console.String(), "hidden")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "course completed", entry["msg"])
	assert.Equal(t, "1", entry["course_id"])
}
