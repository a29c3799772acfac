package appcontext

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/agentstation/marquee"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/movies"
)

// NewMemoryMock returns a Mock backed by an in-memory catalog seeded with
// ms, together with the client it hands out.
func NewMemoryMock(t testing.TB, ms ...movies.Movie) (*Mock, marquee.Client) {
	t.Helper()

	client, err := marquee.New(
		marquee.WithDataFile("/catalog/data.json"),
		marquee.WithFs(afero.NewMemMapFs()),
		marquee.WithLogger(logging.NewNopLogger()),
		marquee.WithRandom(func(int) int { return 0 }),
	)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	for _, m := range ms {
		if err := client.Add(m.Title, m.Rating, m.Year); err != nil {
			t.Fatalf("seed %q: %v", m.Title, err)
		}
	}

	mock := &Mock{
		ClientFunc:   func() (marquee.Client, error) { return client, nil },
		DisableColor: true,
	}
	return mock, client
}
