package movies

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/errors"
)

// ValidateTitle rejects empty or whitespace-only titles and returns the
// trimmed title.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", errors.NewValidationError("title", title, "cannot be empty")
	}
	return trimmed, nil
}

// ValidateRating checks a rating against the accepted range.
func ValidateRating(rating float64) error {
	if math.IsNaN(rating) || rating < constants.MinRating || rating > constants.MaxRating {
		return errors.NewValidationError("rating", rating,
			fmt.Sprintf("must be between %g and %g", constants.MinRating, constants.MaxRating))
	}
	return nil
}

// ValidateYear checks a release year against the accepted range.
func ValidateYear(year int) error {
	if year < constants.MinYear || year > constants.MaxYear {
		return errors.NewValidationError("year", year,
			fmt.Sprintf("must be between %d and %d", constants.MinYear, constants.MaxYear))
	}
	return nil
}

// ParseRating parses and validates user input for a rating.
func ParseRating(input string) (float64, error) {
	rating, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, errors.NewValidationError("rating", input, "not a number")
	}
	if err := ValidateRating(rating); err != nil {
		return 0, err
	}
	return rating, nil
}

// ParseYear parses and validates user input for a release year.
func ParseYear(input string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.NewValidationError("year", input, "not a whole number")
	}
	if err := ValidateYear(year); err != nil {
		return 0, err
	}
	return year, nil
}
