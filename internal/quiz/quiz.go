// Package quiz builds flashcards and multiple-choice items from course
// text, using the tagging and question-generation capabilities. Distractor
// sampling is randomized but seedable: the caller injects the RNG.
package quiz

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/dgallion1/studygen/internal/nlp"
	"github.com/dgallion1/studygen/internal/summarize"
)

// Flashcard pairs a generated question with its verbatim source sentence.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// MCQItem is a multiple-choice item. Options holds the correct answer
// exactly once among up to three distractors, in shuffled order. Fewer
// than three distractors is a legitimate outcome of the bounded sampling,
// never padded.
type MCQItem struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Config controls candidate selection and distractor sampling.
type Config struct {
	MinSentenceChars int // Sentences at or under this length are skipped as fragment answers.
	KeywordPool      int // Keywords mixed into the distractor pool.
	Distractors      int // Distractors wanted per item.
	SampleTries      int // Draw attempts before accepting a shortfall.
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MinSentenceChars: 20,
		KeywordPool:      15,
		Distractors:      3,
		SampleTries:      20,
	}
}

// Generator builds quiz material. Reused across runs; the RNG is the only
// mutable state, so a Generator serves one run at a time.
type Generator struct {
	annotator nlp.Annotator
	questions nlp.QuestionGenerator
	rng       *rand.Rand
	log       *slog.Logger
	cfg       Config
}

func NewGenerator(annotator nlp.Annotator, questions nlp.QuestionGenerator, rng *rand.Rand, log *slog.Logger, cfg Config) *Generator {
	if cfg.MinSentenceChars <= 0 {
		cfg.MinSentenceChars = 20
	}
	if cfg.KeywordPool <= 0 {
		cfg.KeywordPool = 15
	}
	if cfg.Distractors <= 0 {
		cfg.Distractors = 3
	}
	if cfg.SampleTries <= 0 {
		cfg.SampleTries = 20
	}
	return &Generator{
		annotator: annotator,
		questions: questions,
		rng:       rng,
		log:       log,
		cfg:       cfg,
	}
}

// Flashcards generates up to maxCount question/answer pairs from the
// first length-filtered sentences in document order. A question-generation
// failure skips that one card, not the run.
func (g *Generator) Flashcards(ctx context.Context, text string, maxCount int) ([]Flashcard, error) {
	sentences, _, err := g.candidates(ctx, text)
	if err != nil {
		return nil, err
	}
	if maxCount <= 0 {
		maxCount = 8
	}
	if len(sentences) > maxCount {
		sentences = sentences[:maxCount]
	}

	cards := make([]Flashcard, 0, len(sentences))
	for _, sent := range sentences {
		question, err := g.questions.Generate(ctx, sent)
		if err != nil {
			g.log.Warn("question generation failed, skipping flashcard", "error", err)
			continue
		}
		cards = append(cards, Flashcard{Question: question, Answer: sent})
	}
	return cards, nil
}

// MCQs generates up to maxCount multiple-choice items. Each item's correct
// answer is a candidate sentence; distractors are drawn at random from the
// union of all candidate sentences and the document keywords.
func (g *Generator) MCQs(ctx context.Context, text string, maxCount int) ([]MCQItem, error) {
	sentences, keywords, err := g.candidates(ctx, text)
	if err != nil {
		return nil, err
	}

	pool := make([]string, 0, len(sentences)+len(keywords))
	pool = append(pool, sentences...)
	pool = append(pool, keywords...)

	if maxCount <= 0 {
		maxCount = 8
	}
	if len(sentences) > maxCount {
		sentences = sentences[:maxCount]
	}

	items := make([]MCQItem, 0, len(sentences))
	for _, answer := range sentences {
		question, err := g.questions.Generate(ctx, answer)
		if err != nil {
			g.log.Warn("question generation failed, skipping mcq", "error", err)
			continue
		}

		options := append(g.sampleDistractors(pool, answer), answer)
		g.rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		items = append(items, MCQItem{
			Question: question,
			Options:  options,
			Answer:   answer,
		})
	}
	return items, nil
}

// sampleDistractors draws from pool until it has the wanted number of
// distinct non-answer entries or runs out of tries. The try bound makes a
// shortfall a valid outcome: the sampling always terminates, even when
// every pool entry equals the answer.
func (g *Generator) sampleDistractors(pool []string, answer string) []string {
	if len(pool) == 0 {
		return nil
	}
	var distractors []string
	for tries := 0; tries < g.cfg.SampleTries && len(distractors) < g.cfg.Distractors; tries++ {
		choice := pool[g.rng.IntN(len(pool))]
		if choice == answer || slices.Contains(distractors, choice) {
			continue
		}
		distractors = append(distractors, choice)
	}
	return distractors
}

// candidates annotates the normalized text and returns the length-filtered
// sentences in document order plus the keyword pool.
func (g *Generator) candidates(ctx context.Context, text string) ([]string, []string, error) {
	sents, err := g.annotator.Annotate(ctx, summarize.Normalize(text))
	if err != nil {
		return nil, nil, err
	}

	sentences := make([]string, 0, len(sents))
	for _, s := range sents {
		t := strings.TrimSpace(s.Text)
		if len(t) > g.cfg.MinSentenceChars {
			sentences = append(sentences, t)
		}
	}
	return sentences, summarize.ExtractKeywords(sents, g.cfg.KeywordPool), nil
}
