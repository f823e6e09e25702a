// Package suggest picks the closest known name for a misspelt one.
package suggest

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Closest returns the candidate closest to name, or the empty string if
// nothing is close enough to be worth suggesting.  Candidates that contain
// name as a case-insensitive subsequence are preferred; otherwise the
// candidate with the smallest edit distance wins provided that distance is
// at most a third of the name’s length (and at least one).
func Closest(name string, candidates []string) string {
	if name == "" || len(candidates) == 0 {
		return ""
	}

	cs := make([]string, len(candidates))
	copy(cs, candidates)
	sort.Strings(cs)

	if ranks := fuzzy.RankFindFold(name, cs); len(ranks) > 0 {
		sort.Stable(ranks)
		return ranks[0].Target
	}

	best, dist := "", -1
	for _, c := range cs {
		if d := fuzzy.LevenshteinDistance(name, c); dist == -1 || d < dist {
			best, dist = c, d
		}
	}
	if dist <= max(1, len([]rune(name))/3) {
		return best
	}
	return ""
}
