package alerts

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/marquee/internal/cmd/output"
)

func TestAlertString(t *testing.T) {
	assert.Equal(t, "✓ Movie 'Heat' added.", Successf("Movie '%s' added.", "Heat").String())
	assert.Equal(t, "✗ save failed: disk full", NewError("save failed").WithError(errors.New("disk full")).String())
	assert.Equal(t, "! not here", NewWarning("not here").String())
}

func TestLevel(t *testing.T) {
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "unknown(9)", Level(9).String())
	assert.NotNil(t, LevelSuccess.Color())
}

func TestFormatWriterPlain(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatTable)

	require.NoError(t, w.WriteAlert(NewInfo("Did you mean: Titanic?").WithDetails("score 86")))
	assert.Equal(t, "i Did you mean: Titanic?\n   score 86\n", buf.String())
}

func TestFormatWriterColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatTable).WithColor(true)

	require.NoError(t, w.WriteAlert(NewError("boom")))
	assert.Contains(t, buf.String(), "\x1b[31m")
	assert.Contains(t, buf.String(), "✗ boom")
}

func TestFormatWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatJSON)

	require.NoError(t, w.WriteAlert(NewWarning("Movie 'Heat' not found.")))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "warning", got["level"])
	assert.Equal(t, "Movie 'Heat' not found.", got["message"])
}

func TestFormatWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatYAML)

	require.NoError(t, w.WriteAlert(NewSuccess("done")))
	assert.Contains(t, buf.String(), "level: success")
	assert.Contains(t, buf.String(), "message: done")
}

func TestDiscardWriter(t *testing.T) {
	assert.NoError(t, DiscardWriter.WriteAlert(NewError("ignored")))
}
