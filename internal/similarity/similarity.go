// Package similarity scores how alike two strings are on a 0-100 scale.
//
// The scorers follow the fuzzywuzzy family: a base ratio derived from the
// longest common subsequence, a partial ratio that slides the shorter string
// over the longer one, token sort and token set variants, and WRatio which
// weights them together. ExtractOne picks the best candidate with WRatio.
package similarity

import (
	"math"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

const (
	// unbaseScale discounts token based scores against the plain ratio.
	unbaseScale = 0.95
	// partialScale discounts partial scores when lengths differ.
	partialScale = 0.90
	// farPartialScale replaces partialScale when one string is over eight
	// times longer than the other.
	farPartialScale = 0.60
)

// Process normalizes s for scoring: non-ASCII runes are dropped, every rune
// that is not a letter, digit or underscore becomes a space, the result is
// lowercased and trimmed.
func Process(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// Ratio is the plain similarity of a and b: twice the longest common
// subsequence over the combined length. Either string being empty scores 0.
func Ratio(a, b string) int {
	return intr(100 * ratio(a, b))
}

// PartialRatio scores the shorter string against the best matching window
// of the longer one.
func PartialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}

	s := string(shorter)
	best := 0.0
	for start := 0; start+len(shorter) <= len(longer); start++ {
		r := ratio(s, string(longer[start:start+len(shorter)]))
		if r > 0.995 {
			return 100
		}
		best = max(best, r)
	}
	return intr(100 * best)
}

// TokenSortRatio compares a and b after sorting their whitespace separated
// tokens. Inputs are processed first.
func TokenSortRatio(a, b string) int {
	return tokenSortRatio(Process(a), Process(b), false)
}

// TokenSetRatio compares the shared and distinct token sets of a and b.
// Inputs are processed first.
func TokenSetRatio(a, b string) int {
	return tokenSetRatio(Process(a), Process(b), false)
}

// WRatio combines the ratios above into one weighted score. Partial scores
// are only considered when one string is at least half again as long as the
// other.
func WRatio(a, b string) int {
	p1, p2 := Process(a), Process(b)
	if p1 == "" || p2 == "" {
		return 0
	}

	base := float64(Ratio(p1, p2))

	l1, l2 := utf8.RuneCountInString(p1), utf8.RuneCountInString(p2)
	lenRatio := float64(max(l1, l2)) / float64(min(l1, l2))

	if lenRatio < 1.5 {
		tsor := float64(tokenSortRatio(p1, p2, false)) * unbaseScale
		tser := float64(tokenSetRatio(p1, p2, false)) * unbaseScale
		return intr(max(base, tsor, tser))
	}

	scale := partialScale
	if lenRatio > 8 {
		scale = farPartialScale
	}

	partial := float64(PartialRatio(p1, p2)) * scale
	ptsor := float64(tokenSortRatio(p1, p2, true)) * unbaseScale * scale
	ptser := float64(tokenSetRatio(p1, p2, true)) * unbaseScale * scale
	return intr(max(base, partial, ptsor, ptser))
}

// ExtractOne returns the choice scoring highest against query with WRatio.
// On equal scores the earliest choice wins. ok is false when choices is empty.
func ExtractOne(query string, choices []string) (match string, score int, ok bool) {
	processed := Process(query)
	score = -1
	for _, choice := range choices {
		s := WRatio(processed, choice)
		if s > score {
			match, score = choice, s
		}
	}
	if score < 0 {
		return "", 0, false
	}
	return match, score, true
}

// ratio is the unrounded form of Ratio in [0, 1].
func ratio(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0
	}
	if a == b {
		return 1
	}
	return 2 * float64(edlib.LCS(a, b)) / float64(la+lb)
}

func tokenSortRatio(p1, p2 string, partial bool) int {
	s1, s2 := sortTokens(strings.Fields(p1)), sortTokens(strings.Fields(p2))
	if partial {
		return PartialRatio(s1, s2)
	}
	return Ratio(s1, s2)
}

func tokenSetRatio(p1, p2 string, partial bool) int {
	if p1 == "" || p2 == "" {
		return 0
	}

	t1, t2 := tokenSet(p1), tokenSet(p2)

	var sect, diff1, diff2 []string
	for tok := range t1 {
		if _, ok := t2[tok]; ok {
			sect = append(sect, tok)
		} else {
			diff1 = append(diff1, tok)
		}
	}
	for tok := range t2 {
		if _, ok := t1[tok]; !ok {
			diff2 = append(diff2, tok)
		}
	}

	sorted := sortTokens(sect)
	combined1 := strings.TrimSpace(sorted + " " + sortTokens(diff1))
	combined2 := strings.TrimSpace(sorted + " " + sortTokens(diff2))

	score := Ratio
	if partial {
		score = PartialRatio
	}
	return max(score(sorted, combined1), score(sorted, combined2), score(combined1, combined2))
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func sortTokens(tokens []string) string {
	sorted := slices.Clone(tokens)
	slices.Sort(sorted)
	return strings.Join(sorted, " ")
}

// intr rounds half to even.
func intr(v float64) int {
	return int(math.RoundToEven(v))
}
