package output

import (
	"io"

	"github.com/agentstation/marquee/internal/cmd/table"
	"github.com/agentstation/marquee/pkg/movies"
)

// FormatMovies writes a movie list in the given format.
func FormatMovies(w io.Writer, ms []movies.Movie, format Format) error {
	if ms == nil {
		ms = []movies.Movie{}
	}

	var data any = ms
	if format.IsTable() {
		data = table.MoviesToTableData(ms, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatStats writes catalog statistics in the given format.
func FormatStats(w io.Writer, s *movies.Stats, format Format) error {
	var data any = s
	if format.IsTable() {
		data = table.StatsToTableData(s)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatAny writes data in the given format.
func FormatAny(w io.Writer, data any, format Format) error {
	return NewFormatter(format).Format(w, data)
}
