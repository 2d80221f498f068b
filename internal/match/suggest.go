package match

// DefaultThreshold is the minimum identifier similarity for a suggestion.
const DefaultThreshold = 0.6

// Suggest returns the candidate most similar to name, if its similarity
// reaches threshold. Ties go to the earlier candidate.
func Suggest(name string, candidates []string, threshold float64) (string, bool) {
	best, bestScore := "", threshold

	found := false

	for _, c := range candidates {
		score := IdentSimilarity(name, c)
		if score > bestScore || (!found && score == bestScore) {
			best, bestScore, found = c, score, true
		}
	}

	return best, found
}
