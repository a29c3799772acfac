// Package histogram bins ratings into equal-width buckets and renders them
// as horizontal text bars.
package histogram

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Bin is one bucket of a histogram. Lower is inclusive; Upper is exclusive
// except for the last bin.
type Bin struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
	Count int     `json:"count" yaml:"count"`
}

// Compute splits the range [min, max] of values into n equal-width bins.
// When all values are equal the range is widened by 0.5 on each side.
// It returns nil when values is empty or n is not positive.
func Compute(values []float64, n int) []Bin {
	if len(values) == 0 || n <= 0 {
		return nil
	}

	lo, hi := slices.Min(values), slices.Max(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	width := (hi - lo) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lower = lo + float64(i)*width
		bins[i].Upper = lo + float64(i+1)*width
	}
	bins[n-1].Upper = hi

	for _, v := range values {
		bins[index(bins, v, lo, width)].Count++
	}
	return bins
}

// index locates the bin for v, correcting for floating point drift at
// bin edges.
func index(bins []Bin, v, lo, width float64) int {
	i := int((v - lo) / width)
	i = max(0, min(i, len(bins)-1))
	if i > 0 && v < bins[i].Lower {
		i--
	} else if i < len(bins)-1 && v >= bins[i+1].Lower {
		i++
	}
	return i
}

// Render writes one bar per bin. The fullest bin is drawn width characters
// wide and the others in proportion.
func Render(w io.Writer, bins []Bin, width int) error {
	peak := 0
	for _, b := range bins {
		peak = max(peak, b.Count)
	}

	for _, b := range bins {
		bar := 0
		if peak > 0 {
			bar = b.Count * width / peak
		}
		if _, err := fmt.Fprintf(w, "%5.2f - %5.2f | %-*s %d\n",
			b.Lower, b.Upper, width, strings.Repeat("█", bar), b.Count); err != nil {
			return err
		}
	}
	return nil
}
