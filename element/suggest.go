package element

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns the vocabulary code closest to fragment, or "" when
// nothing is reasonably close. Subsequence matches are preferred; the
// fallback is plain edit distance.
func Suggest(fragment string) string {
	if fragment == "" {
		return ""
	}
	codes := AllCodes()

	ranks := fuzzy.RankFindFold(fragment, codes)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDistance := "", len(fragment)
	for _, code := range codes {
		d := fuzzy.LevenshteinDistance(fragment, code)
		if d < bestDistance {
			best, bestDistance = code, d
		}
	}
	if bestDistance > 2 {
		return ""
	}
	return best
}
