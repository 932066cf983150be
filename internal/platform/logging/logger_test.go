package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ogurasousui/codex-employee-shifts/internal/platform/config"
)

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := newLogger(config.LoggingConfig{Level: "info", Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shift upsert", zap.Int("count", 3))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "shift upsert", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 3, entry["count"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	logger, err := newLogger(config.LoggingConfig{Level: "warn", Format: "console"}, zapcore.AddSync(&bytes.Buffer{}))
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger_Invalid(t *testing.T) {
	t.Parallel()

	_, err := newLogger(config.LoggingConfig{Level: "loud", Format: "json"}, zapcore.AddSync(&bytes.Buffer{}))
	assert.Error(t, err)

	_, err = newLogger(config.LoggingConfig{Level: "info", Format: "xml"}, zapcore.AddSync(&bytes.Buffer{}))
	assert.Error(t, err)
}
