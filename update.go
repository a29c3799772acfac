package marquee

import (
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/movies"
)

// Mutator adds, deletes and re-rates movies. Values are stored as given;
// range checks and duplicate detection belong to the caller.
type Mutator interface {
	// Add appends a movie to the catalog.
	Add(title string, rating float64, year int) error

	// Delete removes every movie whose title matches, ignoring case.
	// It reports whether anything was removed.
	Delete(title string) (bool, error)

	// UpdateRating sets the rating of the first movie whose title matches,
	// ignoring case. It reports whether a movie was found.
	UpdateRating(title string, rating float64) (bool, error)
}

// Add appends a movie to the catalog.
func (c *client) Add(title string, rating float64, year int) error {
	if err := c.store.Add(title, rating, year); err != nil {
		return errors.WrapResource("add", "movie", title, err)
	}
	c.options.logger.Debug().
		Str("title", title).
		Float64("rating", rating).
		Int("year", year).
		Msg("Movie added")
	return nil
}

// Delete removes every movie whose title matches, ignoring case.
func (c *client) Delete(title string) (bool, error) {
	removed, err := c.store.Delete(title)
	if err != nil {
		return false, errors.WrapResource("delete", "movie", title, err)
	}
	c.options.logger.Debug().
		Str("title", title).
		Bool("removed", removed).
		Msg("Movie delete")
	return removed, nil
}

// UpdateRating sets the rating of the first matching movie and saves.
// Nothing is written when no movie matches.
func (c *client) UpdateRating(title string, rating float64) (bool, error) {
	ms, err := c.load("update")
	if err != nil {
		return false, err
	}

	i := movies.IndexOf(ms, title)
	if i < 0 {
		c.options.logger.Debug().Str("title", title).Msg("No movie to update")
		return false, nil
	}

	previous := ms[i].Rating
	ms[i].Rating = rating
	if err := c.store.Save(ms); err != nil {
		return false, errors.WrapResource("update", "movie", title, err)
	}

	c.options.logger.Debug().
		Str("title", ms[i].Title).
		Float64("previous", previous).
		Float64("rating", rating).
		Msg("Movie rating updated")
	return true, nil
}
