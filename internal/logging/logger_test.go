package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"homefinder/internal/config"
)

func TestNew_LevelFromConfig(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "warn"}, Options{})
	require.NoError(t, err)
	defer func() { _ = logger.Sync() }()

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "error"}, Options{Verbose: true})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud"}, Options{})
	require.Error(t, err)
}

func TestNew_ToFileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "homes.log")
	logger, err := New(config.LoggingConfig{Level: "info", Format: "json", File: path}, Options{ToFile: true})
	require.NoError(t, err)

	For(logger, CategoryBoot).Info("hello", zap.String("k", "v"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"logger":"boot"`)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNew_ToFileWithoutPathIsNop(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "info"}, Options{ToFile: true})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestFor_NamesChild(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	parent := zap.New(core)

	For(parent, CategoryListings).Debug("recompute")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "listings", entries[0].LoggerName)
}

func TestFor_NilParent(t *testing.T) {
	l := For(nil, CategoryStore)
	require.NotNil(t, l)
	l.Info("dropped")
}
