package library

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// minSuggestScore is the Jaro-Winkler similarity a name needs to be offered
// as a suggestion.
const minSuggestScore = 0.85

// Suggest returns the playlist name most similar to name, if any scores at
// least minSuggestScore. Matching is case-insensitive.
func (l *Library) Suggest(name string, ignore []string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}

	var best string
	var bestScore float32
	for _, candidate := range l.PlaylistNames(ignore) {
		score := edlib.JaroWinklerSimilarity(needle, strings.ToLower(candidate))
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore < minSuggestScore {
		return "", false
	}
	return best, true
}
