package summarize

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	dotRunsRe    = regexp.MustCompile(`(\.\s*){2,}`)
)

// Normalize collapses whitespace runs to single spaces, collapses runs of
// terminal periods into one, and trims the result. Idempotent:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = dotRunsRe.ReplaceAllString(text, ". ")
	return strings.TrimSpace(text)
}
