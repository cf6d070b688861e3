package utils

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// FindClosestString returns the candidate with the smallest edit distance to s, ok is false if
// no candidate is within maxDifferences edits. A substitution counts as two edits.
func FindClosestString(candidates []string, s string, maxDifferences int) (closest string, distance int, ok bool) {
	target := []rune(s)
	distance = -1

	for _, candidate := range candidates {
		d := levenshtein.DistanceForStrings([]rune(candidate), target, levenshtein.DefaultOptions)
		if d > maxDifferences {
			continue
		}
		if distance < 0 || d < distance {
			closest = candidate
			distance = d
		}
	}

	if distance < 0 {
		return "", 0, false
	}
	return closest, distance, true
}
