package quiz

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/dgallion1/studygen/internal/nlp"
)

// fakeAnnotator splits on sentence terminators and tags tokens by rule:
// words in nouns are NOUN, capitalized words are PROPN.
type fakeAnnotator struct {
	nouns map[string]bool
	err   error
}

func (f *fakeAnnotator) Annotate(ctx context.Context, text string) ([]nlp.Sentence, error) {
	if f.err != nil {
		return nil, &nlp.AnnotationError{Err: f.err}
	}
	var sents []nlp.Sentence
	for _, s := range strings.SplitAfter(text, ". ") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		sent := nlp.Sentence{Text: s}
		for _, w := range strings.Fields(s) {
			w = strings.Trim(w, ".,:;!?\"'")
			if w == "" {
				continue
			}
			token := nlp.Token{Text: w, POS: "X"}
			if f.nouns[strings.ToLower(w)] {
				token.POS = "NOUN"
			} else if w[0] >= 'A' && w[0] <= 'Z' {
				token.POS = "PROPN"
			}
			sent.Tokens = append(sent.Tokens, token)
		}
		sents = append(sents, sent)
	}
	return sents, nil
}

// fakeQG answers deterministically; sentences in fail get an error.
type fakeQG struct {
	fail  map[string]bool
	calls int
}

func (f *fakeQG) Generate(ctx context.Context, sentence string) (string, error) {
	f.calls++
	if f.fail[sentence] {
		return "", errors.New("generation failed")
	}
	return "What about: " + sentence, nil
}

func newTestGenerator(ann nlp.Annotator, qg nlp.QuestionGenerator, seed uint64) *Generator {
	rng := rand.New(rand.NewPCG(seed, seed))
	return NewGenerator(ann, qg, rng, slog.New(slog.DiscardHandler), DefaultConfig())
}

const sampleText = "Photosynthesis converts light into chemical energy. " +
	"Short one. " +
	"Mitochondria produce most of the cell's energy supply. " +
	"The nucleus stores the genetic material of the cell."

func TestFlashcards_SkipsShortSentences(t *testing.T) {
	g := newTestGenerator(&fakeAnnotator{}, &fakeQG{}, 1)

	cards, err := g.Flashcards(context.Background(), sampleText, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	for _, c := range cards {
		if len(c.Answer) <= 20 {
			t.Errorf("short sentence %q must be filtered out", c.Answer)
		}
		if c.Question != "What about: "+c.Answer {
			t.Errorf("question %q does not match answer %q", c.Question, c.Answer)
		}
	}
}

func TestFlashcards_HonorsMaxCount(t *testing.T) {
	g := newTestGenerator(&fakeAnnotator{}, &fakeQG{}, 1)

	cards, err := g.Flashcards(context.Background(), sampleText, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Errorf("expected 2 cards, got %d", len(cards))
	}
}

func TestFlashcards_GenerationFailureSkipsCard(t *testing.T) {
	qg := &fakeQG{fail: map[string]bool{
		"Mitochondria produce most of the cell's energy supply.": true,
	}}
	g := newTestGenerator(&fakeAnnotator{}, qg, 1)

	cards, err := g.Flashcards(context.Background(), sampleText, 8)
	if err != nil {
		t.Fatalf("a per-card failure must not fail the run: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected the failing card dropped, got %d cards", len(cards))
	}
	for _, c := range cards {
		if strings.Contains(c.Answer, "Mitochondria") {
			t.Errorf("failed card %q must not appear", c.Answer)
		}
	}
}

func TestFlashcards_AnnotationFailurePropagates(t *testing.T) {
	g := newTestGenerator(&fakeAnnotator{err: errors.New("tagger down")}, &fakeQG{}, 1)

	if _, err := g.Flashcards(context.Background(), sampleText, 8); err == nil {
		t.Fatal("expected annotation error to propagate")
	}
}

func TestMCQs_OptionInvariants(t *testing.T) {
	ann := &fakeAnnotator{nouns: map[string]bool{"energy": true, "nucleus": true}}
	g := newTestGenerator(ann, &fakeQG{}, 7)

	items, err := g.MCQs(context.Background(), sampleText, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected mcq items")
	}
	for _, item := range items {
		if len(item.Options) < 1 || len(item.Options) > 4 {
			t.Errorf("expected 1..4 options, got %d", len(item.Options))
		}
		found := 0
		for _, opt := range item.Options {
			if opt == item.Answer {
				found++
			}
		}
		if found != 1 {
			t.Errorf("answer must appear exactly once in options, appeared %d times", found)
		}
	}
}

func TestMCQs_ShortfallWhenPoolOffersNoDistractors(t *testing.T) {
	// Both candidate sentences are identical and all-lowercase, so the pool
	// holds nothing but copies of each answer and no keywords.
	text := "gravity pulls objects downward here. gravity pulls objects downward here."
	g := newTestGenerator(&fakeAnnotator{}, &fakeQG{}, 3)

	items, err := g.MCQs(context.Background(), text, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected mcq items")
	}
	for _, item := range items {
		if len(item.Options) != 1 {
			t.Errorf("expected a bare-answer item after sampling shortfall, got %d options", len(item.Options))
		}
		if item.Options[0] != item.Answer {
			t.Errorf("sole option %q must be the answer %q", item.Options[0], item.Answer)
		}
	}
}

func TestMCQs_SeededRunsAreIdentical(t *testing.T) {
	ann := func() *fakeAnnotator {
		return &fakeAnnotator{nouns: map[string]bool{"energy": true, "nucleus": true}}
	}

	first, err := newTestGenerator(ann(), &fakeQG{}, 42).MCQs(context.Background(), sampleText, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := newTestGenerator(ann(), &fakeQG{}, 42).MCQs(context.Background(), sampleText, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("expected identical item counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Answer != second[i].Answer {
			t.Errorf("item %d: answers differ: %q vs %q", i, first[i].Answer, second[i].Answer)
		}
		if len(first[i].Options) != len(second[i].Options) {
			t.Errorf("item %d: option counts differ", i)
			continue
		}
		for j := range first[i].Options {
			if first[i].Options[j] != second[i].Options[j] {
				t.Errorf("item %d option %d: %q vs %q", i, j, first[i].Options[j], second[i].Options[j])
			}
		}
	}
}
