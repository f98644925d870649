package summarize

import (
	"context"
	"strings"
)

// shortSectionWords is the word count below which a section stands in for
// its own note: too short to be worth a model call.
const shortSectionWords = 40

// Note is a per-section study note, titled by its section heading.
type Note struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// synthesizeNote builds the study note for one non-empty section. Long
// sections go to the abstractive summarizer with length bounds derived
// from the section's word count; any summarizer error falls back to the
// first two locally-split sentences, and the error is returned alongside
// the usable note so the caller can log it. The run never aborts on a
// single section's model failure.
func (p *Pipeline) synthesizeNote(ctx context.Context, title, content string) (Note, error) {
	wordCount := len(strings.Fields(content))
	if wordCount < shortSectionWords {
		return Note{Title: title, Content: content}, nil
	}

	maxLen := clamp(wordCount/2, 60, 200)
	minLen := clamp(wordCount/6, 20, 60)

	summary, err := p.summarizer.Summarize(ctx, content, minLen, maxLen)
	if err != nil {
		sents := splitSentences(content)
		if len(sents) > 2 {
			sents = sents[:2]
		}
		return Note{Title: title, Content: Normalize(strings.Join(sents, " "))}, err
	}
	return Note{Title: title, Content: Normalize(summary)}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
