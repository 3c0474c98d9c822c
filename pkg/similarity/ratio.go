// Package similarity scores how closely two short strings resemble each other.
package similarity

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Ratio returns 2*M/T for the lowercased, trimmed inputs, where M is the number
// of runes in matching blocks and T the combined rune count. Two empty strings
// score 1.0.
func Ratio(a, b string) float64 {
	left := runes(a)
	right := runes(b)
	if len(left) == 0 && len(right) == 0 {
		return 1.0
	}
	return difflib.NewMatcher(left, right).Ratio()
}

func runes(s string) []string {
	normalized := strings.ToLower(strings.TrimSpace(s))
	out := make([]string, 0, len(normalized))
	for _, r := range normalized {
		out = append(out, string(r))
	}
	return out
}
