// Package match scores title similarity so the menu can warn before a
// near-duplicate is added. The score is advisory only and never blocks
// an add.
package match

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Closest returns the existing title most similar to candidate and its
// similarity score on a 0-100 scale. With no existing titles the score
// is 0 and the title empty. Ties keep the earlier title.
func Closest(candidate string, existing []string) (string, int) {
	best := ""
	bestScore := -1
	for _, title := range existing {
		if s := Ratio(candidate, title); s > bestScore {
			best, bestScore = title, s
		}
	}
	if bestScore < 0 {
		return "", 0
	}
	return best, bestScore
}

// Ratio is a case-insensitive Levenshtein similarity on a 0-100 scale:
// 100 for equal strings, 0 for entirely different ones.
func Ratio(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 100
	}

	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 100
	}

	d := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(d)/float64(longest))))
}
