package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jason-s-yu/klondike/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "klondike.log")
	logger, closeLog, err := newLogger(config.Config{LogLevel: "debug", LogFormat: "json", LogFile: path})
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger.WithField("seed", 42).Info("Game started.")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"seed":42`)
	assert.Contains(t, string(data), `"msg":"Game started."`)
}

func TestNewLoggerDiscard(t *testing.T) {
	logger, closeLog, err := newLogger(config.Config{LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)
	assert.NoError(t, closeLog())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, _, err := newLogger(config.Config{LogLevel: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}
