package movies

import (
	"strings"
)

// Scorer picks the best of choices for query and reports its similarity on
// a 0-100 scale. ok is false when there is nothing to choose from.
type Scorer func(query string, choices []string) (match string, score int, ok bool)

// SearchKind classifies a search outcome.
type SearchKind int

const (
	// KindNoMatch means neither a substring nor a close fuzzy match exists.
	KindNoMatch SearchKind = iota
	// KindExact means at least one title contains the query.
	KindExact
	// KindSuggestion means no title contains the query but one is close.
	KindSuggestion
)

// String returns the string representation of the kind.
func (k SearchKind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindSuggestion:
		return "suggestion"
	default:
		return "no_match"
	}
}

// MarshalText encodes the kind by name.
func (k SearchKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// SearchResult is the outcome of Search.
type SearchResult struct {
	Kind       SearchKind `json:"kind" yaml:"kind"`
	Matches    []Movie    `json:"matches,omitempty" yaml:"matches,omitempty"`
	Suggestion string     `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
	Score      int        `json:"score,omitempty" yaml:"score,omitempty"`
}

// Search looks for query in the titles of ms.
//
// Titles containing the trimmed, case-folded query are returned in catalog
// order. Only when there are none is scorer consulted; its best title is
// offered as a suggestion when the score is strictly above threshold.
func Search(ms []Movie, query string, scorer Scorer, threshold int) *SearchResult {
	q := FoldTitle(strings.TrimSpace(query))

	var matches []Movie
	for _, m := range ms {
		if strings.Contains(FoldTitle(strings.TrimSpace(m.Title)), q) {
			matches = append(matches, m)
		}
	}
	if len(matches) > 0 {
		return &SearchResult{Kind: KindExact, Matches: matches}
	}

	if scorer == nil || len(ms) == 0 {
		return &SearchResult{Kind: KindNoMatch}
	}

	best, score, ok := scorer(q, Titles(ms))
	if !ok || score <= threshold {
		return &SearchResult{Kind: KindNoMatch, Score: score}
	}
	return &SearchResult{Kind: KindSuggestion, Suggestion: best, Score: score}
}
