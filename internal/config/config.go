package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDBPath is used when TAKENOTES_DB is unset. XDG_DATA_HOME, when
	// set, replaces ~/.local/share.
	DefaultDBPath = "~/.local/share/takenotes/labels.db"

	DefaultLogLevel = "info"
)

// Config holds the runtime settings shared by every binary
type Config struct {
	DBPath   string
	LogLevel string
	LogFile  string // empty logs to stderr (the TUI discards instead)
}

// Load reads the configuration from the environment. Callers load .env
// first with godotenv.
func Load() *Config {
	return &Config{
		DBPath:   DBPath(),
		LogLevel: strings.ToLower(getEnv("TAKENOTES_LOG_LEVEL", DefaultLogLevel)),
		LogFile:  getEnv("TAKENOTES_LOG_FILE", ""),
	}
}

// DBPath returns the database path from TAKENOTES_DB, falling back to the
// XDG data directory
func DBPath() string {
	if env := os.Getenv("TAKENOTES_DB"); env != "" {
		return env
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "takenotes", "labels.db")
	}
	return DefaultDBPath
}

// Level parses LogLevel; unknown values fall back to info
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text logger at the configured level. It writes to
// LogFile when set, otherwise to fallback. The returned closer releases
// the log file.
func (c *Config) NewLogger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	w := fallback
	var closer io.Closer = io.NopCloser(nil)
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: c.Level(),
	}))
	return logger, closer, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
