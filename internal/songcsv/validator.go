package songcsv

import (
	"strings"

	"hitstercards/internal/models"
)

// ClosestGenre suggests a valid genre for a misspelled input. Substring
// containment wins first; otherwise the nearest genre by edit distance
// is suggested when the distance is small relative to the names.
func ClosestGenre(input string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}

	genres := models.Genres()
	for _, g := range genres {
		lower := strings.ToLower(g)
		if strings.Contains(lower, input) || strings.Contains(input, lower) {
			return g, true
		}
	}

	best := ""
	bestDist := -1
	for _, g := range genres {
		d := levenshtein(input, strings.ToLower(g))
		if bestDist == -1 || d < bestDist {
			best, bestDist = g, d
		}
	}

	limit := len(input)
	if len(best) < limit {
		limit = len(best)
	}
	if best != "" && bestDist <= limit/2 {
		return best, true
	}
	return "", false
}

func levenshtein(a, b string) int {
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
