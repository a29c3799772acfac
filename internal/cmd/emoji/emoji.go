// Package emoji provides symbol constants for CLI output.
package emoji

// Symbols used for status lines in the CLI and the interactive menu.
const (
	// Success marks a completed operation.
	Success = "✓"

	// Error marks a failed operation or rejected input.
	Error = "✗"

	// Warning marks a non-fatal problem, such as a title that was not found.
	Warning = "!"

	// Info marks neutral information.
	Info = "i"

	// Suggestion marks a "did you mean" hint.
	Suggestion = "?"

	// Pick marks the randomly chosen movie.
	Pick = "*"

	// Bar is the block used to draw histogram bars.
	Bar = "█"
)
