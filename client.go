// Package marquee provides the main entry point for the marquee movie
// catalog. A Client loads the catalog document fresh on every call, runs
// the query or mutation in memory and, for mutations, writes the whole
// document back. No state is kept between calls.
//
// Example usage:
//
//	mq, err := marquee.New(marquee.WithDataFile("movies.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := mq.Add("The Matrix", 9.0, 1999); err != nil {
//	    log.Fatal(err)
//	}
//
//	stats, err := mq.Stats()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if stats != nil {
//	    fmt.Printf("%d movies, average %.2f\n", stats.Count, stats.Average)
//	}
//
//	result, err := mq.Search("matrx")
//	if err == nil && result.Kind == movies.KindSuggestion {
//	    fmt.Printf("Did you mean: %s?\n", result.Suggestion)
//	}
package marquee

import (
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/movies"
	"github.com/agentstation/marquee/pkg/store"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client is the catalog management and query engine.
type Client interface {

	// Catalog provides read access to the stored movies
	Catalog

	// Mutator adds, deletes and re-rates movies
	Mutator

	// Querier computes views and aggregates over the catalog
	Querier
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options
	store   *store.Store
}

// New creates a new Client with the given options.
func New(opts ...Option) (Client, error) {
	o := defaults().apply(opts...)
	if o.dataFile == "" {
		return nil, errors.NewConfigError("marquee", "data file path is empty", nil)
	}

	c := &client{
		options: o,
		store: store.New(o.dataFile,
			store.WithFs(o.fs),
			store.WithLogger(o.logger),
		),
	}

	o.logger.Debug().Str("data_file", o.dataFile).Msg("Catalog client created")
	return c, nil
}

// load reads the catalog, tagging failures with the operation.
func (c *client) load(operation string) ([]movies.Movie, error) {
	ms, err := c.store.Load()
	if err != nil {
		return nil, errors.WrapResource(operation, "catalog", c.store.Path(), err)
	}
	return ms, nil
}
