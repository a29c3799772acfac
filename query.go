package marquee

import (
	"github.com/agentstation/marquee/pkg/movies"
)

// Querier computes views and aggregates over the catalog.
type Querier interface {
	// SortedByRating returns the catalog ordered by rating, highest first.
	// Equal ratings keep catalog order.
	SortedByRating() ([]movies.Movie, error)

	// PickRandom returns a uniformly chosen movie, or nil when the catalog
	// is empty.
	PickRandom() (*movies.Movie, error)

	// Stats aggregates the catalog, or returns nil when it is empty.
	Stats() (*movies.Stats, error)

	// Search finds titles containing query, falling back to a fuzzy
	// suggestion when none do.
	Search(query string) (*movies.SearchResult, error)
}

// SortedByRating returns the catalog ordered by rating, highest first.
func (c *client) SortedByRating() ([]movies.Movie, error) {
	ms, err := c.load("sort")
	if err != nil {
		return nil, err
	}
	return movies.SortByRating(ms), nil
}

// PickRandom returns a uniformly chosen movie.
func (c *client) PickRandom() (*movies.Movie, error) {
	ms, err := c.load("pick")
	if err != nil {
		return nil, err
	}
	return movies.Pick(ms, c.options.intn), nil
}

// Stats aggregates the catalog.
func (c *client) Stats() (*movies.Stats, error) {
	ms, err := c.load("stats")
	if err != nil {
		return nil, err
	}
	return movies.ComputeStats(ms), nil
}

// Search finds titles containing query, falling back to a fuzzy suggestion.
func (c *client) Search(query string) (*movies.SearchResult, error) {
	ms, err := c.load("search")
	if err != nil {
		return nil, err
	}

	result := movies.Search(ms, query, c.options.scorer, c.options.threshold)
	c.options.logger.Debug().
		Str("query", query).
		Stringer("kind", result.Kind).
		Int("matches", len(result.Matches)).
		Int("score", result.Score).
		Msg("Search finished")
	return result, nil
}
