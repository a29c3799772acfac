package marquee

import (
	"github.com/agentstation/marquee/pkg/movies"
)

// Catalog provides read access to the stored movies.
type Catalog interface {
	// List returns every movie in catalog order.
	List() ([]movies.Movie, error)

	// Titles returns every title in catalog order.
	Titles() ([]string, error)

	// Ratings returns every rating in catalog order.
	Ratings() ([]float64, error)

	// Exists reports whether a movie with the same title, ignoring case,
	// is already stored.
	Exists(title string) (bool, error)
}

// List returns every movie in catalog order.
func (c *client) List() ([]movies.Movie, error) {
	return c.load("list")
}

// Titles returns every title in catalog order.
func (c *client) Titles() ([]string, error) {
	ms, err := c.load("list")
	if err != nil {
		return nil, err
	}
	return movies.Titles(ms), nil
}

// Ratings returns every rating in catalog order.
func (c *client) Ratings() ([]float64, error) {
	ms, err := c.load("list")
	if err != nil {
		return nil, err
	}
	return movies.Ratings(ms), nil
}

// Exists reports whether title is already stored.
func (c *client) Exists(title string) (bool, error) {
	ms, err := c.load("lookup")
	if err != nil {
		return false, err
	}
	return movies.IndexOf(ms, title) >= 0, nil
}
