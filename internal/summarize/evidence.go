package summarize

import (
	"fmt"
	"strings"
)

// FindEvidence returns a "keyword: sentence" glossary entry for the
// sentence in sectionText that best explains keyword. Among sentences
// containing the keyword (case-insensitive substring), the one with the
// highest occurrence density (count / word count) wins; it is truncated
// to maxWords words with an ellipsis when longer. When no sentence
// contains the keyword the entry is a deterministic placeholder embedding
// the keyword, never an empty string.
func FindEvidence(sectionText, keyword string, maxWords int) string {
	needle := strings.ToLower(keyword)

	var best string
	bestScore := 0.0
	for _, sent := range splitSentences(sectionText) {
		count := strings.Count(strings.ToLower(sent), needle)
		if count == 0 {
			continue
		}
		words := len(strings.Fields(sent))
		if words == 0 {
			continue
		}
		score := float64(count) / float64(words)
		if score > bestScore {
			bestScore = score
			best = sent
		}
	}

	if best == "" {
		return fmt.Sprintf("%s: definition not found.", keyword)
	}

	if maxWords > 0 {
		words := strings.Fields(best)
		if len(words) > maxWords {
			best = strings.Join(words[:maxWords], " ") + "..."
		}
	}
	return fmt.Sprintf("%s: %s", keyword, best)
}
