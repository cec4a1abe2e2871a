package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TAKENOTES_DB", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("TAKENOTES_LOG_LEVEL", "")
	t.Setenv("TAKENOTES_LOG_FILE", "")

	cfg := Load()
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Empty(t, cfg.LogFile)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TAKENOTES_DB", "/tmp/x.db")
	t.Setenv("TAKENOTES_LOG_LEVEL", "DEBUG")

	cfg := Load()
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestDBPath_XDG(t *testing.T) {
	t.Setenv("TAKENOTES_DB", "")
	t.Setenv("XDG_DATA_HOME", "/data")

	assert.Equal(t, filepath.Join("/data", "takenotes", "labels.db"), DBPath())
}

func TestLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	} {
		assert.Equal(t, want, (&Config{LogLevel: in}).Level(), in)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := (&Config{LogLevel: "warn"}).NewLogger(&buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "kind", "tag")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "kind=tag")

	path := filepath.Join(t.TempDir(), "takenotes.log")
	fileLogger, fileCloser, err := (&Config{LogFile: path}).NewLogger(&buf)
	require.NoError(t, err)
	fileLogger.Info("to file")
	require.NoError(t, fileCloser.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
