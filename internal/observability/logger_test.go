package observability

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ntbohl/fars/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("json handler", func(t *testing.T) {
		logger := NewLogger(&config.Config{LogLevel: "info", LogFormat: "json"})

		_, ok := logger.Handler().(*slog.JSONHandler)
		assert.True(t, ok)
	})

	t.Run("text handler", func(t *testing.T) {
		logger := NewLogger(&config.Config{LogLevel: "info", LogFormat: "text"})

		_, ok := logger.Handler().(*slog.TextHandler)
		assert.True(t, ok)
	})

	t.Run("debug level", func(t *testing.T) {
		logger := NewLogger(&config.Config{LogLevel: "debug", LogFormat: "text"})

		assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("warn suppresses info", func(t *testing.T) {
		logger := NewLogger(&config.Config{LogLevel: "warn", LogFormat: "json"})

		assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger := NewLogger(&config.Config{LogLevel: "", LogFormat: "json"})

		assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
		assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	})
}
