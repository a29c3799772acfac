// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"github.com/agentstation/marquee/pkg/movies"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// MoviesToTableData converts movies to table format.
// Wide output adds the catalog position of each row.
func MoviesToTableData(ms []movies.Movie, wide bool) Data {
	headers := []string{"Title", "Year", "Rating"}
	align := []Align{AlignLeft, AlignRight, AlignRight}
	if wide {
		headers = append([]string{"#"}, headers...)
		align = append([]Align{AlignRight}, align...)
	}

	rows := make([][]string, 0, len(ms))
	for i, m := range ms {
		row := []string{m.Title, strconv.Itoa(m.Year), movies.FormatRating(m.Rating)}
		if wide {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// StatsToTableData converts catalog statistics to a key-value table.
func StatsToTableData(s *movies.Stats) Data {
	rows := [][]string{
		{"Total movies", strconv.Itoa(s.Count)},
		{"Average rating", strconv.FormatFloat(s.Average, 'f', 2, 64)},
		{"Median rating", strconv.FormatFloat(s.Median, 'f', 2, 64)},
		{"Mode rating", s.Mode.String()},
	}
	for _, m := range s.Highest {
		rows = append(rows, []string{"Highest rated", m.String()})
	}
	for _, m := range s.Lowest {
		rows = append(rows, []string{"Lowest rated", m.String()})
	}

	return Data{
		Headers:         []string{"Statistic", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}
