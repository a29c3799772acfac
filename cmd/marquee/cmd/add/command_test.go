package add

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/marquee/internal/appcontext"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/movies"
)

func execute(app appcontext.Interface, args ...string) (string, error) {
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestAdd(t *testing.T) {
	app, client := appcontext.NewMemoryMock(t)

	out, err := execute(app, "The", "Matrix", "--rating", "9", "--year", "1999")
	require.NoError(t, err)
	assert.Contains(t, out, "Movie 'The Matrix' added successfully!")

	ms, err := client.List()
	require.NoError(t, err)
	assert.Equal(t, []movies.Movie{{Title: "The Matrix", Rating: 9, Year: 1999}}, ms)
}

func TestAddDuplicate(t *testing.T) {
	app, client := appcontext.NewMemoryMock(t, movies.Movie{Title: "Heat", Rating: 8.3, Year: 1995})

	_, err := execute(app, "HEAT", "-r", "5", "-y", "1986")
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))

	ms, err := client.List()
	require.NoError(t, err)
	assert.Len(t, ms, 1)
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"rating too high", []string{"Heat", "-r", "10.5", "-y", "1995"}},
		{"year too early", []string{"Heat", "-r", "8", "-y", "1700"}},
		{"blank title", []string{"  ", "-r", "8", "-y", "1995"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, client := appcontext.NewMemoryMock(t)

			_, err := execute(app, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			ms, err := client.List()
			require.NoError(t, err)
			assert.Empty(t, ms)
		})
	}
}

func TestAddRequiresFlags(t *testing.T) {
	app, _ := appcontext.NewMemoryMock(t)
	_, err := execute(app, "Heat", "-r", "8")
	assert.Error(t, err)
}
