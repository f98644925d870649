package summarize

import (
	"sort"
	"strings"

	"github.com/dgallion1/studygen/internal/nlp"
)

// RankSentences scores annotated sentences and returns the topK sentence
// texts, best first. A token scores 2 when it carries an entity tag or is
// a noun/proper noun, 1 otherwise. Ties keep encounter order (stable
// sort). Sentences with identical text collapse into one entry at the
// first occurrence's position, keeping the last occurrence's score — the
// same collapsing a text-keyed score map would do.
func RankSentences(sents []nlp.Sentence, topK int) []string {
	type scored struct {
		text  string
		score int
	}

	index := make(map[string]int, len(sents))
	ranked := make([]scored, 0, len(sents))

	for _, sent := range sents {
		text := strings.TrimSpace(sent.Text)
		if text == "" {
			continue
		}
		score := 0
		for _, tok := range sent.Tokens {
			if tok.Ent != "" || tok.NounLike() {
				score += 2
			} else {
				score++
			}
		}
		if at, ok := index[text]; ok {
			ranked[at].score = score
			continue
		}
		index[text] = len(ranked)
		ranked = append(ranked, scored{text: text, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.text
	}
	return out
}
