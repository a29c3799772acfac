// Package appcontext provides the shared application context interface
// used by all commands.
package appcontext

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/marquee"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/marquee/app implements it; tests use Mock.
type Interface interface {
	// Client returns the catalog client for the configured data file,
	// creating it lazily if needed.
	Client() (marquee.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, wide, markdown).
	OutputFormat() string

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// HistogramWidth returns the width of the longest histogram bar.
	HistogramWidth() int

	// In returns the reader interactive prompts read from.
	In() io.Reader

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
