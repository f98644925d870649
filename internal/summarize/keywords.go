package summarize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/studygen/internal/nlp"
)

// minKeywordRunes is the keyword length floor: candidate tokens must be
// strictly longer than this.
const minKeywordRunes = 3

// ExtractKeywords pulls candidate terms from annotated text: alphabetic
// noun/proper-noun tokens longer than minKeywordRunes, in encounter
// order, deduplicated on the lowercased surface form, stopping once topN
// keywords are collected. The encounter-order slice keeps output
// deterministic for a fixed annotation.
func ExtractKeywords(sents []nlp.Sentence, topN int) []string {
	if topN <= 0 {
		return nil
	}

	seen := make(map[string]struct{}, topN)
	keywords := make([]string, 0, topN)

	for _, sent := range sents {
		for _, tok := range sent.Tokens {
			text := strings.TrimSpace(tok.Text)
			if !tok.NounLike() || !isAlpha(text) || utf8.RuneCountInString(text) <= minKeywordRunes {
				continue
			}
			key := strings.ToLower(text)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keywords = append(keywords, text)
			if len(keywords) >= topN {
				return keywords
			}
		}
	}
	return keywords
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
