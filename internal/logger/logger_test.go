package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, "warn", LevelFromVerbosity(0, false))
	assert.Equal(t, "info", LevelFromVerbosity(1, false))
	assert.Equal(t, "debug", LevelFromVerbosity(2, false))
	assert.Equal(t, "debug", LevelFromVerbosity(5, false))
	assert.Equal(t, "error", LevelFromVerbosity(3, true))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
}

func TestNewDefaultsToWarn(t *testing.T) {
	l, err := New(Config{})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestReplaceRoutesPackageFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))

	Warn("unexpected case status code", zap.String("status", "XX"))
	Debug("fetching", zap.Int("page", 1))
	restore()
	Warn("after restore")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "XX", entry.ContextMap()["status"])
}
