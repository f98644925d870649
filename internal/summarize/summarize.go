// Package summarize implements the document analysis core: section
// segmentation, extractive sentence ranking, keyword extraction,
// keyword-to-evidence matching, and per-section study-note synthesis.
// Model capabilities come in through the nlp interfaces; the package
// itself is synchronous and processes sections in document order.
package summarize

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dgallion1/studygen/internal/nlp"
)

// Config controls artifact sizing.
type Config struct {
	TopBullets         int // Quick bullets kept from the ranked sentences.
	KeywordsPerSection int // Glossary keyword candidates per section.
	EvidenceMaxWords   int // Word cap on glossary evidence sentences.
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		TopBullets:         7,
		KeywordsPerSection: 8,
		EvidenceMaxWords:   25,
	}
}

// Result is the terminal output of one document run. The caller owns it
// exclusively; nothing here mutates after Run returns.
type Result struct {
	QuickBullets []string `json:"quick_bullets"`
	StudyNotes   []Note   `json:"study_notes"`
	ExamGuide    []string `json:"exam_guide"`
}

// Pipeline runs the analysis core over one document at a time. Construct
// it once with the capability clients and reuse it across runs; it holds
// no per-run state.
type Pipeline struct {
	annotator  nlp.Annotator
	summarizer nlp.Summarizer
	log        *slog.Logger
	cfg        Config
}

func New(annotator nlp.Annotator, summarizer nlp.Summarizer, log *slog.Logger, cfg Config) *Pipeline {
	if cfg.TopBullets <= 0 {
		cfg.TopBullets = 7
	}
	if cfg.KeywordsPerSection <= 0 {
		cfg.KeywordsPerSection = 8
	}
	if cfg.EvidenceMaxWords <= 0 {
		cfg.EvidenceMaxWords = 25
	}
	return &Pipeline{
		annotator:  annotator,
		summarizer: summarizer,
		log:        log,
		cfg:        cfg,
	}
}

// Run analyzes raw course text: it segments on heading markers and builds
// quick bullets, study notes, and the exam-guide glossary. An annotation
// failure aborts the run with a typed error; per-section summarizer
// failures are absorbed by the extractive fallback.
func (p *Pipeline) Run(ctx context.Context, rawText string) (*Result, error) {
	return p.RunSections(ctx, SplitSections(rawText), rawText)
}

// RunSections is Run with the segmentation already done, for documents
// whose source format carried its own headings.
func (p *Pipeline) RunSections(ctx context.Context, sections []Section, rawText string) (*Result, error) {
	text := Normalize(rawText)

	sents, err := p.annotator.Annotate(ctx, text)
	if err != nil {
		return nil, err
	}

	result := &Result{
		QuickBullets: RankSentences(sents, p.cfg.TopBullets),
	}

	seenKeywords := make(map[string]struct{})
	for _, sec := range sections {
		content := Normalize(sec.Content)
		if content == "" {
			continue
		}

		note, noteErr := p.synthesizeNote(ctx, sec.Title, content)
		if noteErr != nil {
			p.log.Warn("summarizer failed, using extractive fallback",
				"section", sec.Title, "error", noteErr)
		}
		result.StudyNotes = append(result.StudyNotes, note)

		secSents, err := p.annotator.Annotate(ctx, content)
		if err != nil {
			return nil, err
		}
		for _, kw := range ExtractKeywords(secSents, p.cfg.KeywordsPerSection) {
			key := strings.ToLower(kw)
			if _, ok := seenKeywords[key]; ok {
				continue
			}
			seenKeywords[key] = struct{}{}
			result.ExamGuide = append(result.ExamGuide, FindEvidence(content, kw, p.cfg.EvidenceMaxWords))
		}
	}

	return result, nil
}
