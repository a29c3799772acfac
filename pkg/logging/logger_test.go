package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/marquee/pkg/logging"
)

func TestSetDefault(t *testing.T) {
	original := *logging.Default()
	oldLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(oldLevel)
	})

	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel))

	logging.Default().Info().Msg("info message")
	logging.FromContext(context.Background()).Warn().Msg("warning message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if !strings.Contains(output, "warning message") {
		t.Errorf("Expected warning message in output, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithOperation(ctx, "delete")
	ctx = logging.WithTitle(ctx, "The Matrix")

	logging.FromContext(ctx).Info().Msg("test message")

	testLogger.AssertContains(t, `"operation":"delete"`)
	testLogger.AssertContains(t, `"title":"The Matrix"`)
	testLogger.AssertContains(t, "test message")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	//nolint:staticcheck // nil context is exercised on purpose
	if logging.FromContext(nil) != logging.Default() {
		t.Error("FromContext(nil) should return the default logger")
	}
	if logging.FromContext(context.Background()) != logging.Default() {
		t.Error("FromContext without logger should return the default logger")
	}
}

func TestTestLoggerLines(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	testLogger.Info().Msg("one")
	testLogger.Debug().Msg("two")

	if got := len(testLogger.Lines()); got != 2 {
		t.Errorf("expected 2 lines, got %d", got)
	}
	testLogger.AssertNotContains(t, "three")
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("MARQUEE_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	t.Setenv("LOG_FORMAT", "")

	if got := logging.EnvConfig().Level; got != "info" {
		t.Errorf("expected info by default, got %s", got)
	}

	t.Setenv("DEBUG", "1")
	if got := logging.EnvConfig().Level; got != "debug" {
		t.Errorf("expected DEBUG to select debug, got %s", got)
	}

	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("MARQUEE_LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "json")
	cfg := logging.EnvConfig()
	if cfg.Level != "error" {
		t.Errorf("expected MARQUEE_LOG_LEVEL to win, got %s", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected json format, got %s", cfg.Format)
	}
}
