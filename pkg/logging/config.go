package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/marquee/pkg/constants"
)

// Config describes how a logger is built.
type Config struct {
	Level      string // trace, debug, info, warn, error, off
	Format     string // json, console or auto
	Output     string // stderr, stdout, discard or a file path
	TimeFormat string // kitchen, rfc3339, unix or a Go layout
	NoColor    bool
	AddCaller  bool
}

// DefaultConfig returns an info-level, auto-format stderr configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// NewLoggerFromConfig builds a logger and sets zerolog's global level to
// match. Caller information is added at debug and below.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	ctx := zerolog.New(writerFor(cfg)).Level(level).With().Timestamp()
	if cfg.AddCaller || level <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

func writerFor(cfg *Config) io.Writer {
	out := openOutput(cfg.Output)
	if out == io.Discard {
		return out
	}

	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if f, ok := out.(*os.File); ok && isTerminal(f) {
			format = "console"
		}
	}
	if format != "console" && format != "pretty" {
		return out
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeLayout(cfg.TimeFormat),
		NoColor:    cfg.NoColor,
	}
}

// openOutput falls back to stderr when a log file cannot be opened.
func openOutput(target string) io.Writer {
	switch strings.ToLower(target) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard", "none":
		return io.Discard
	}

	f, err := os.OpenFile(target, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return os.Stderr
	}
	return f
}

var levelAliases = map[string]zerolog.Level{
	"warning":  zerolog.WarnLevel,
	"none":     zerolog.Disabled,
	"off":      zerolog.Disabled,
	"disabled": zerolog.Disabled,
}

func parseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if l, ok := levelAliases[level]; ok {
		return l
	}
	if l, err := zerolog.ParseLevel(level); err == nil && level != "" {
		return l
	}
	return zerolog.InfoLevel
}

func timeLayout(format string) string {
	switch strings.ToLower(format) {
	case "", "kitchen":
		return time.Kitchen
	case "rfc3339":
		return time.RFC3339
	case "unix", "epoch":
		return ""
	}
	if strings.Contains(format, "2006") || strings.Contains(format, "15:04") {
		return format
	}
	return time.Kitchen
}
