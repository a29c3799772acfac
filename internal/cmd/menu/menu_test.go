package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/marquee"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/movies"
)

func newClient(t *testing.T, ms ...movies.Movie) marquee.Client {
	t.Helper()

	client, err := marquee.New(
		marquee.WithDataFile("/data.json"),
		marquee.WithFs(afero.NewMemMapFs()),
		marquee.WithLogger(logging.NewNopLogger()),
		marquee.WithRandom(func(int) int { return 0 }),
	)
	require.NoError(t, err)
	for _, m := range ms {
		require.NoError(t, client.Add(m.Title, m.Rating, m.Year))
	}
	return client
}

func run(t *testing.T, client marquee.Client, input string) string {
	t.Helper()

	var out bytes.Buffer
	m := New(client, strings.NewReader(input), &out, WithLogger(logging.NewNopLogger()))
	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

func TestMenuShowsEntries(t *testing.T) {
	out := run(t, newClient(t), "10\n")
	assert.Contains(t, out, "Movie Application")
	assert.Contains(t, out, "1. Add a movie")
	assert.Contains(t, out, "10. Exit")
	assert.Contains(t, out, "Goodbye!")
}

func TestMenuEndOfInput(t *testing.T) {
	out := run(t, newClient(t), "")
	assert.Contains(t, out, "Choose an option: ")
}

func TestMenuInvalidChoice(t *testing.T) {
	out := run(t, newClient(t), "42\n10\n")
	assert.Contains(t, out, "Invalid choice. Please try again.")
}

func TestMenuAdd(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		client := newClient(t)
		out := run(t, client, "1\n  Heat  \n8.3\n1995\n10\n")
		assert.Contains(t, out, "Movie 'Heat' added successfully!")

		ms, err := client.List()
		require.NoError(t, err)
		assert.Equal(t, []movies.Movie{{Title: "Heat", Rating: 8.3, Year: 1995}}, ms)
	})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty title", "1\n   \n10\n", "Invalid title: cannot be empty."},
		{"duplicate", "1\nHEAT\n10\n", "Movie 'HEAT' already exists."},
		{"rating not a number", "1\nAlien\nhigh\n10\n", "Invalid rating: not a number."},
		{"rating out of range", "1\nAlien\n11\n10\n", "Invalid rating: must be between 0 and 10."},
		{"year out of range", "1\nAlien\n8.5\n1700\n10\n", "Invalid year: must be between 1800 and 2100."},
		{"year not a number", "1\nAlien\n8.5\nabc\n10\n", "Invalid year: not a whole number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, movies.Movie{Title: "Heat", Rating: 8.3, Year: 1995})
			out := run(t, client, tt.input)
			assert.Contains(t, out, tt.want)

			ms, err := client.List()
			require.NoError(t, err)
			assert.Len(t, ms, 1)
		})
	}
}

func TestMenuDelete(t *testing.T) {
	client := newClient(t, movies.Movie{Title: "Heat", Rating: 8.3, Year: 1995})

	out := run(t, client, "2\nAlien\n2\nheat\n10\n")
	assert.Contains(t, out, "Movie 'Alien' not found.")
	assert.Contains(t, out, "Movie 'heat' deleted successfully!")

	ms, err := client.List()
	require.NoError(t, err)
	assert.Empty(t, ms)
}

func TestMenuUpdateRating(t *testing.T) {
	client := newClient(t, movies.Movie{Title: "Heat", Rating: 8.3, Year: 1995})

	out := run(t, client, "3\nheat\n9.5\n3\nAlien\n5\n3\nHeat\n-1\n10\n")
	assert.Contains(t, out, "Movie 'heat' rating updated successfully!")
	assert.Contains(t, out, "Movie 'Alien' not found.")
	assert.Contains(t, out, "Invalid rating: must be between 0 and 10.")

	ms, err := client.List()
	require.NoError(t, err)
	assert.Equal(t, 9.5, ms[0].Rating)
}

func TestMenuStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := run(t, newClient(t), "4\n10\n")
		assert.Contains(t, out, "No movies available.")
	})

	t.Run("populated", func(t *testing.T) {
		client := newClient(t,
			movies.Movie{Title: "M", Rating: 9.0, Year: 1999},
			movies.Movie{Title: "T", Rating: 7.5, Year: 1997},
			movies.Movie{Title: "I", Rating: 8.8, Year: 2010},
		)
		out := run(t, client, "4\n10\n")
		assert.Contains(t, out, "Total Movies: 3")
		assert.Contains(t, out, "Average Rating: 8.43")
		assert.Contains(t, out, "Median Rating: 8.80")
		assert.Contains(t, out, "Mode Rating: No unique mode")
		assert.Contains(t, out, "Highest Rated:\nM (9.0)\n")
		assert.Contains(t, out, "Lowest Rated:\nT (7.5)\n")
	})
}

func TestMenuSearch(t *testing.T) {
	client := newClient(t,
		movies.Movie{Title: "The Matrix", Rating: 9.0, Year: 1999},
		movies.Movie{Title: "Titanic", Rating: 7.9, Year: 1997},
	)

	out := run(t, client, "5\nmatrix\n5\nTitanik\n5\nzzz\n10\n")
	assert.Contains(t, out, "Exact match(es) found:")
	assert.Contains(t, out, "The Matrix (1999) - Rating: 9.0")
	assert.Contains(t, out, "Did you mean: Titanic?")
	assert.Contains(t, out, "No close matches found.")
}

func TestMenuHistogram(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := run(t, newClient(t), "6\n10\n")
		assert.Contains(t, out, "No movie ratings available to display.")
	})

	t.Run("populated", func(t *testing.T) {
		client := newClient(t,
			movies.Movie{Title: "A", Rating: 1.0, Year: 2000},
			movies.Movie{Title: "B", Rating: 9.0, Year: 2001},
		)
		out := run(t, client, "6\n10\n")
		assert.Contains(t, out, "Movie Ratings Distribution")
		assert.Contains(t, out, " 1.00 -  1.80 |")
		assert.Contains(t, out, " 8.20 -  9.00 |")
	})
}

func TestMenuRandomAndLists(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := run(t, newClient(t), "7\n8\n9\n10\n")
		assert.Equal(t, 2, strings.Count(out, "No movies available."))
		assert.Contains(t, out, "No movies found.")
	})

	t.Run("populated", func(t *testing.T) {
		client := newClient(t,
			movies.Movie{Title: "Cats", Rating: 2.8, Year: 2019},
			movies.Movie{Title: "Heat", Rating: 8.3, Year: 1995},
		)
		out := run(t, client, "7\n8\n9\n10\n")
		assert.Contains(t, out, "Random Pick: Cats (2019) - Rating: 2.8")

		sorted := out[strings.Index(out, "Movies Sorted by Rating:"):]
		assert.Less(t, strings.Index(sorted, "Heat"), strings.Index(sorted, "Cats"))

		all := out[strings.Index(out, "All Movies:"):]
		assert.Less(t, strings.Index(all, "Cats"), strings.Index(all, "Heat"))
	})
}

func TestMenuContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(newClient(t), strings.NewReader("9\n"), &bytes.Buffer{})
	assert.ErrorIs(t, m.Run(ctx), context.Canceled)
}

func TestDispatchUnknown(t *testing.T) {
	m := New(newClient(t), strings.NewReader(""), &bytes.Buffer{})
	_, err := m.Dispatch(Command(99))
	assert.Error(t, err)
}
