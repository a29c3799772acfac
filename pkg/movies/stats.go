package movies

import (
	"encoding/json"
	"math"
	"slices"

	"github.com/agentstation/marquee/pkg/constants"
)

// NoUniqueMode is reported when several ratings share the highest frequency.
const NoUniqueMode = "No unique mode"

// Mode is the most frequent rating of a catalog, if exactly one exists.
type Mode struct {
	Value  float64
	Unique bool
}

// String renders the mode value or NoUniqueMode.
func (m Mode) String() string {
	if !m.Unique {
		return NoUniqueMode
	}
	return FormatRating(m.Value)
}

// MarshalJSON encodes a unique mode as a number and otherwise as NoUniqueMode.
func (m Mode) MarshalJSON() ([]byte, error) {
	if !m.Unique {
		return json.Marshal(NoUniqueMode)
	}
	return json.Marshal(m.Value)
}

// MarshalYAML mirrors MarshalJSON.
func (m Mode) MarshalYAML() (any, error) {
	if !m.Unique {
		return NoUniqueMode, nil
	}
	return m.Value, nil
}

// Stats aggregates a non-empty catalog.
type Stats struct {
	Count   int     `json:"total_movies" yaml:"total_movies"`
	Average float64 `json:"average_rating" yaml:"average_rating"`
	Median  float64 `json:"median_rating" yaml:"median_rating"`
	Mode    Mode    `json:"mode_rating" yaml:"mode_rating"`
	Highest []Movie `json:"highest_rated" yaml:"highest_rated"`
	Lowest  []Movie `json:"lowest_rated" yaml:"lowest_rated"`
}

// ComputeStats aggregates ms. It returns nil when ms is empty.
func ComputeStats(ms []Movie) *Stats {
	if len(ms) == 0 {
		return nil
	}

	ratings := Ratings(ms)
	maxRating := slices.Max(ratings)
	minRating := slices.Min(ratings)

	stats := &Stats{
		Count:   len(ms),
		Average: round(mean(ratings), constants.StatsPrecision),
		Median:  round(median(ratings), constants.StatsPrecision),
		Mode:    mode(ratings),
	}
	for _, m := range ms {
		if m.Rating == maxRating {
			stats.Highest = append(stats.Highest, m)
		}
		if m.Rating == minRating {
			stats.Lowest = append(stats.Lowest, m)
		}
	}
	return stats
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// mode returns the single most frequent value. Frequencies are counted in
// first-seen order so the result never depends on map iteration.
func mode(values []float64) Mode {
	counts := make(map[float64]int, len(values))
	var order []float64
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best, tied := 0, 0
	var value float64
	for _, v := range order {
		switch c := counts[v]; {
		case c > best:
			best, tied, value = c, 1, v
		case c == best:
			tied++
		}
	}

	if tied != 1 {
		return Mode{}
	}
	return Mode{Value: value, Unique: true}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(v*scale) / scale
}
