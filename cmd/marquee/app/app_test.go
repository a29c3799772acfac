package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/movies"
)

type harness struct {
	app *App
	fs  afero.Fs
	in  *strings.Reader
	out *bytes.Buffer
}

func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	isolate(t)

	saved := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(saved) })
	t.Setenv("LOG_OUTPUT", "discard")

	h := &harness{
		fs:  afero.NewMemMapFs(),
		in:  strings.NewReader(input),
		out: &bytes.Buffer{},
	}

	app, err := New("1.0.0", "abc123", "2024-01-01", "test",
		WithFs(h.fs),
		WithLogger(logging.NewNopLogger()),
		WithIO(h.in, h.out, h.out),
	)
	require.NoError(t, err)
	h.app = app
	return h
}

func (h *harness) run(args ...string) error {
	h.out.Reset()
	return h.app.Execute(context.Background(), args)
}

func TestNew(t *testing.T) {
	h := newHarness(t, "")

	assert.Equal(t, "1.0.0", h.app.Version())
	assert.Equal(t, "abc123", h.app.Commit())
	assert.Equal(t, "2024-01-01", h.app.Date())
	assert.Equal(t, "test", h.app.BuiltBy())
	assert.NotNil(t, h.app.Logger())
	assert.Equal(t, "data.json", h.app.Config().DataFile)
	assert.Equal(t, 40, h.app.HistogramWidth())
}

func TestClientSingleton(t *testing.T) {
	h := newHarness(t, "")

	c1, err := h.app.Client()
	require.NoError(t, err)
	c2, err := h.app.Client()
	require.NoError(t, err)
	assert.Same(t, c1, c2)
}

func TestClientRebuiltWhenSettingsChange(t *testing.T) {
	h := newHarness(t, "")

	c1, err := h.app.Client()
	require.NoError(t, err)

	h.app.config.SuggestionThreshold = 90
	c2, err := h.app.Client()
	require.NoError(t, err)
	assert.NotSame(t, c1, c2)

	h.app.logger = logging.NewNopLogger()
	c3, err := h.app.Client()
	require.NoError(t, err)
	assert.NotSame(t, c2, c3)

	c4, err := h.app.Client()
	require.NoError(t, err)
	assert.Same(t, c3, c4)
}

func TestExecuteThresholdFromConfigFile(t *testing.T) {
	h := newHarness(t, "")
	path := "/catalog.json"
	require.NoError(t, h.run("-f", path, "add", "Titanic", "-r", "7.9", "-y", "1997"))

	require.NoError(t, h.run("-f", path, "--no-color", "-o", "table", "search", "Titanik"))
	assert.Contains(t, h.out.String(), "Did you mean: Titanic?")

	strict := filepath.Join(t.TempDir(), "strict.yaml")
	require.NoError(t, os.WriteFile(strict, []byte("suggestion_threshold: 99\n"), 0o644))

	require.NoError(t, h.run("--config", strict, "-f", path, "--no-color", "-o", "table", "search", "Titanik"))
	assert.Contains(t, h.out.String(), "No close matches found.")
}

func TestExecuteAttachesLoggerToContext(t *testing.T) {
	isolate(t)
	saved := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(saved) })

	logFile := filepath.Join(t.TempDir(), "marquee.log")
	t.Setenv("LOG_OUTPUT", logFile)
	t.Setenv("LOG_FORMAT", "json")

	var out bytes.Buffer
	app, err := New("1.0.0", "", "", "test",
		WithFs(afero.NewMemMapFs()),
		WithIO(strings.NewReader(""), &out, &out),
	)
	require.NoError(t, err)

	require.NoError(t, app.Execute(context.Background(), []string{"-v", "-o", "json", "list"}))

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"operation":"list"`)
	assert.Contains(t, string(data), "Listing movies")
}

func TestWithConfigValidates(t *testing.T) {
	isolate(t)
	_, err := New("dev", "", "", "", WithConfig(&Config{DataFile: "", HistogramWidth: 1}))
	assert.Error(t, err)
}

func TestExecuteWorkflow(t *testing.T) {
	h := newHarness(t, "")
	path := "/movies/catalog.json"

	require.NoError(t, h.run("--data-file", path, "add", "The Matrix", "--rating", "9", "--year", "1999"))
	assert.Contains(t, h.out.String(), "Movie 'The Matrix' added successfully!")

	require.NoError(t, h.run("-f", path, "add", "Titanic", "-r", "7.9", "-y", "1997"))

	err := h.run("-f", path, "add", "titanic", "-r", "5", "-y", "2000")
	assert.True(t, errors.IsAlreadyExists(err))

	require.NoError(t, h.run("-f", path, "rate", "titanic", "-r", "8.1"))

	require.NoError(t, h.run("-f", path, "-o", "json", "list", "--sorted"))
	var ms []movies.Movie
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &ms))
	assert.Equal(t, []movies.Movie{
		{Title: "The Matrix", Rating: 9, Year: 1999},
		{Title: "Titanic", Rating: 8.1, Year: 1997},
	}, ms)

	require.NoError(t, h.run("-f", path, "--no-color", "-o", "table", "search", "Titanik"))
	assert.Contains(t, h.out.String(), "Did you mean: Titanic?")

	require.NoError(t, h.run("-f", path, "delete", "THE MATRIX"))

	err = h.run("-f", path, "delete", "The Matrix")
	assert.True(t, errors.IsNotFound(err))

	exists, err := afero.Exists(h.fs, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExecuteDefaultsToMenu(t *testing.T) {
	h := newHarness(t, "1\nHeat\n8.3\n1995\n10\n")

	require.NoError(t, h.run("--no-color"))
	assert.Contains(t, h.out.String(), "Movie Application")
	assert.Contains(t, h.out.String(), "Movie 'Heat' added successfully!")

	data, err := afero.ReadFile(h.fs, "data.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Heat"`)
}

func TestExecuteRejectsBadFormat(t *testing.T) {
	h := newHarness(t, "")
	err := h.run("-o", "xml", "list")
	assert.True(t, errors.IsValidationError(err))
}

func TestExecuteVersionFlag(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.run("--version"))
	assert.Equal(t, "marquee 1.0.0\n", h.out.String())
}
