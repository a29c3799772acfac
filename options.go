package marquee

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/marquee/internal/similarity"
	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/movies"
)

// Option is a function that configures a Client.
type Option func(*options)

// options holds the configuration for a Client.
type options struct {
	dataFile  string
	fs        afero.Fs
	logger    *zerolog.Logger
	intn      func(n int) int
	scorer    movies.Scorer
	threshold int
}

// defaults returns the default options.
func defaults() *options {
	return &options{
		dataFile:  constants.DefaultDataFile,
		fs:        afero.NewOsFs(),
		logger:    logging.Default(),
		intn:      rand.IntN,
		scorer:    similarity.ExtractOne,
		threshold: constants.SuggestionThreshold,
	}
}

// apply applies the given options.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithDataFile configures the path of the catalog document.
func WithDataFile(path string) Option {
	return func(o *options) {
		o.dataFile = path
	}
}

// WithFs configures the filesystem the catalog document lives on.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithLogger configures the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRandom configures the source used by PickRandom. intn must return a
// value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(o *options) {
		if intn != nil {
			o.intn = intn
		}
	}
}

// WithScorer configures the fuzzy scorer used when a search finds no
// substring match.
func WithScorer(scorer movies.Scorer) Option {
	return func(o *options) {
		if scorer != nil {
			o.scorer = scorer
		}
	}
}

// WithSuggestionThreshold configures the score a fuzzy match must exceed to
// be suggested.
func WithSuggestionThreshold(threshold int) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}
