package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/movies"
)

// AddRatingFlag adds a required --rating flag to cmd.
func AddRatingFlag(cmd *cobra.Command) *float64 {
	rating := new(float64)
	cmd.Flags().Float64VarP(rating, "rating", "r", 0, "rating between 0 and 10")
	_ = cmd.MarkFlagRequired("rating")
	return rating
}

// AddYearFlag adds a required --year flag to cmd.
func AddYearFlag(cmd *cobra.Command) *int {
	year := new(int)
	cmd.Flags().IntVarP(year, "year", "y", 0, "release year between 1800 and 2100")
	_ = cmd.MarkFlagRequired("year")
	return year
}

// AddWidthFlag adds a --width flag for histogram bars.
func AddWidthFlag(cmd *cobra.Command) *int {
	width := new(int)
	cmd.Flags().IntVarP(width, "width", "w", 0,
		"width of the longest bar (default from config, otherwise 40)")
	return width
}

// ValidateMovie checks user-supplied values before they reach the catalog.
// It returns the trimmed title.
func ValidateMovie(title string, rating float64, year int) (string, error) {
	title, err := movies.ValidateTitle(title)
	if err != nil {
		return "", err
	}
	if err := movies.ValidateRating(rating); err != nil {
		return "", err
	}
	if err := movies.ValidateYear(year); err != nil {
		return "", err
	}
	return title, nil
}

// HistogramWidth resolves the bar width from the flag, falling back to the
// configured value.
func HistogramWidth(flag, configured int) int {
	switch {
	case flag > 0:
		return flag
	case configured > 0:
		return configured
	default:
		return constants.HistogramWidth
	}
}
