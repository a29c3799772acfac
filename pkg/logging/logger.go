// Package logging provides structured logging for marquee using zerolog.
// Console output is used when stderr is a terminal, JSON everywhere else.
//
//	log := logging.Default()
//	log.Info().Str("title", "Heat").Msg("Movie added")
//
//	ctx := logging.WithLogger(context.Background(), log)
//	logging.FromContext(ctx).Debug().Msg("Using logger from context")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger = NewLoggerFromConfig(EnvConfig())

// EnvConfig returns the configuration implied by the environment alone.
// MARQUEE_LOG_LEVEL wins over LOG_LEVEL; DEBUG=1 selects debug when neither
// is set. LOG_FORMAT=json forces JSON on a terminal.
func EnvConfig() *Config {
	cfg := DefaultConfig()

	switch {
	case os.Getenv("MARQUEE_LOG_LEVEL") != "":
		cfg.Level = os.Getenv("MARQUEE_LOG_LEVEL")
	case os.Getenv("LOG_LEVEL") != "":
		cfg.Level = os.Getenv("LOG_LEVEL")
	case os.Getenv("DEBUG") != "":
		cfg.Level = "debug"
	}

	if f := os.Getenv("LOG_FORMAT"); f != "" {
		cfg.Format = f
	}
	return cfg
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger, including zerolog's log.Logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
