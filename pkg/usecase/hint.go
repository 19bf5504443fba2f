package usecase

import "github.com/lithammer/fuzzysearch/fuzzy"

// maxHintDistance is the largest edit distance still treated as a likely
// typo when suggesting an existing entry.
const maxHintDistance = 2

// closestMatch returns the candidate nearest to want within the edit
// distance threshold, or "" when nothing is close enough.
func closestMatch(want string, candidates []string) string {
	best := ""
	bestDist := maxHintDistance + 1
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(want, c); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}
