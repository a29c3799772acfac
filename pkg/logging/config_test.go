package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/marquee/pkg/logging"
)

func TestNewLoggerFromConfig(t *testing.T) {
	oldLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(oldLevel) })

	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.NotNil(t, logger)
	})

	t.Run("json to file respects level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "marquee.log")

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "warn",
			Format: "json",
			Output: path,
		})
		logger.Info().Msg("info message")
		logger.Warn().Msg("warn message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "info message")
		assert.Contains(t, string(content), "warn message")
	})

	t.Run("console format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "console.log")

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:   "info",
			Format:  "console",
			Output:  path,
			NoColor: true,
		})
		logger.Info().Str("key", "value").Msg("console test")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "console test")
		assert.Contains(t, string(content), "INF")
	})

	t.Run("discard output", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "debug", Output: "discard"})
		logger.Debug().Msg("dropped")
	})
}
