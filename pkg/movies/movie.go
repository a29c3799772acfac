// Package movies defines the movie record and the pure catalog operations
// the engine runs over an in-memory list: title matching, sorting,
// statistics, search and random selection.
package movies

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Movie is a single catalog entry.
type Movie struct {
	Title  string  `json:"title" yaml:"title"`
	Rating float64 `json:"rating" yaml:"rating"`
	Year   int     `json:"year" yaml:"year"`
}

// String renders the movie the way every listing shows it.
func (m Movie) String() string {
	return fmt.Sprintf("%s (%d) - Rating: %s", m.Title, m.Year, FormatRating(m.Rating))
}

// FormatRating renders a rating with at least one decimal place.
func FormatRating(r float64) string {
	s := fmt.Sprintf("%g", r)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// FoldTitle normalizes a title for case-insensitive comparison.
// Whitespace is significant; callers trim user input where needed.
func FoldTitle(title string) string {
	return cases.Fold().String(title)
}

// SameTitle reports whether two titles are equal under case folding.
func SameTitle(a, b string) bool {
	return FoldTitle(a) == FoldTitle(b)
}

// IndexOf returns the index of the first movie whose title matches title
// under case folding, or -1.
func IndexOf(ms []Movie, title string) int {
	folded := FoldTitle(title)
	for i := range ms {
		if FoldTitle(ms[i].Title) == folded {
			return i
		}
	}
	return -1
}

// Titles returns the titles of ms in catalog order.
func Titles(ms []Movie) []string {
	titles := make([]string, len(ms))
	for i, m := range ms {
		titles[i] = m.Title
	}
	return titles
}

// Ratings returns the ratings of ms in catalog order.
func Ratings(ms []Movie) []float64 {
	ratings := make([]float64, len(ms))
	for i, m := range ms {
		ratings[i] = m.Rating
	}
	return ratings
}

// Pick returns a uniformly chosen movie using intn, which must return a
// value in [0, n). It returns nil for an empty catalog.
func Pick(ms []Movie, intn func(n int) int) *Movie {
	if len(ms) == 0 {
		return nil
	}
	m := ms[intn(len(ms))]
	return &m
}
