package movies

import "slices"

// SortByRating returns a copy of ms ordered by rating, highest first.
// Movies with equal ratings keep their catalog order.
func SortByRating(ms []Movie) []Movie {
	sorted := slices.Clone(ms)
	if sorted == nil {
		sorted = []Movie{}
	}
	slices.SortStableFunc(sorted, func(a, b Movie) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		default:
			return 0
		}
	})
	return sorted
}
