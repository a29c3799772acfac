// Package app provides the application context and dependency management
// for the marquee CLI. It centralizes configuration, logging and the
// catalog client so that commands only depend on appcontext.Interface.
package app

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/marquee"
	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/pkg/errors"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the marquee application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	loaded *Config // before flags
	config *Config // effective
	flags  flagValues
	logger *zerolog.Logger

	// Terminal streams
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	fs afero.Fs

	// Catalog client (lazy-initialized, rebuilt when its settings change)
	mu        sync.Mutex
	client    marquee.Client
	clientKey clientKey
	injected  bool
}

// clientKey holds the settings a client was built with.
type clientKey struct {
	dataFile  string
	threshold int
	logger    *zerolog.Logger
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and config file and can be
// replaced using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		in:      os.Stdin,
		out:     os.Stdout,
		errOut:  os.Stderr,
		fs:      afero.NewOsFs(),
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.loaded = config
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// HistogramWidth returns the configured histogram bar width.
func (a *App) HistogramWidth() int {
	return a.config.HistogramWidth
}

// In returns the reader interactive prompts read from.
func (a *App) In() io.Reader {
	return a.in
}

// Client returns the catalog client, creating it lazily if needed.
// A new client is created when the data file, suggestion threshold or
// logger changes.
func (a *App) Client() (marquee.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := clientKey{
		dataFile:  a.config.DataFile,
		threshold: a.config.SuggestionThreshold,
		logger:    a.logger,
	}
	if a.client != nil && (a.injected || a.clientKey == key) {
		return a.client, nil
	}

	client, err := marquee.New(
		marquee.WithDataFile(a.config.DataFile),
		marquee.WithFs(a.fs),
		marquee.WithLogger(a.logger),
		marquee.WithSuggestionThreshold(a.config.SuggestionThreshold),
	)
	if err != nil {
		return nil, errors.WrapResource("create", "client", a.config.DataFile, err)
	}

	a.client = client
	a.clientKey = key
	return client, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if err := config.Validate(); err != nil {
			return err
		}
		a.loaded = config
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFs sets the filesystem the catalog document lives on.
func WithFs(fs afero.Fs) Option {
	return func(a *App) error {
		a.fs = fs
		return nil
	}
}

// WithClient sets a custom catalog client (useful for testing).
func WithClient(client marquee.Client) Option {
	return func(a *App) error {
		a.client = client
		a.injected = client != nil
		return nil
	}
}

// WithIO sets the streams commands and the menu use.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) error {
		a.in, a.out, a.errOut = in, out, errOut
		return nil
	}
}
