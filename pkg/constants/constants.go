// Package constants provides shared constants used throughout the marquee codebase.
// This includes domain bounds, matching thresholds, file permissions and
// defaults that should be consistent between the CLI and the engine.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Catalog document constants
const (
	// DefaultDataFile is the catalog document used when none is configured
	DefaultDataFile = "data.json"

	// JSONIndent is the indentation used when writing the catalog document
	JSONIndent = "    "
)

// Domain bounds enforced by callers before reaching the engine
const (
	// MinRating is the lowest accepted rating
	MinRating = 0.0

	// MaxRating is the highest accepted rating
	MaxRating = 10.0

	// MinYear is the earliest accepted release year
	MinYear = 1800

	// MaxYear is the latest accepted release year
	MaxYear = 2100
)

// Query constants
const (
	// SuggestionThreshold is the similarity score a fuzzy match must exceed
	// to be offered as a "did you mean" suggestion
	SuggestionThreshold = 70

	// HistogramBins is the number of bins in the ratings histogram
	HistogramBins = 10

	// HistogramWidth is the default width of the longest histogram bar
	HistogramWidth = 40

	// StatsPrecision is the number of decimal places for mean and median
	StatsPrecision = 2
)
