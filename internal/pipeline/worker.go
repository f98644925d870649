package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/dgallion1/studygen/internal/config"
	"github.com/dgallion1/studygen/internal/document"
	"github.com/dgallion1/studygen/internal/nlp"
	"github.com/dgallion1/studygen/internal/parser"
	"github.com/dgallion1/studygen/internal/quiz"
	"github.com/dgallion1/studygen/internal/summarize"
)

// Worker processes a single study-material job: parse the upload, build
// the summary artifacts, then flashcards and MCQs.
type Worker struct {
	annotator  nlp.Annotator
	summarizer nlp.Summarizer
	questions  nlp.QuestionGenerator
	rng        *rand.Rand
	log        *slog.Logger
	cfg        config.Config
}

func NewWorker(annotator nlp.Annotator, summarizer nlp.Summarizer, questions nlp.QuestionGenerator, rng *rand.Rand, log *slog.Logger, cfg config.Config) *Worker {
	return &Worker{
		annotator:  annotator,
		summarizer: summarizer,
		questions:  questions,
		rng:        rng,
		log:        log,
		cfg:        cfg,
	}
}

// Process runs the full pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	doc, err := w.parse(job)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Title != "" {
		doc.Title = job.Title
	}

	rawText := doc.PlainText()
	if strings.TrimSpace(rawText) == "" {
		log.Warn("no extractable text")
		job.AddError("no extractable text")
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.SetContentHash(ContentHashHex([]byte(rawText)))

	// Phase 2: Summary artifacts (bullets, notes, glossary).
	job.SetStatus(StatusSummarizing, "summarizing")
	core := summarize.New(
		w.annotator,
		&RetrySummarizer{Inner: w.summarizer, Log: log},
		log,
		summarize.Config{
			TopBullets:         orDefault(job.Options.Bullets, w.cfg.TopBullets),
			KeywordsPerSection: w.cfg.KeywordsPerSection,
			EvidenceMaxWords:   w.cfg.EvidenceMaxWords,
		},
	)

	var sections []summarize.Section
	if doc.Structured() {
		// The source format already carries headings; unheaded preamble is
		// dropped, mirroring the segmenter's preamble rule.
		for _, s := range doc.Sections {
			if s.Heading != "" {
				sections = append(sections, summarize.Section{Title: s.Heading, Content: s.Text})
			}
		}
	} else {
		sections = summarize.SplitSections(rawText)
	}

	summary, err := core.RunSections(ctx, sections, rawText)
	if err != nil {
		// Annotation is load-bearing: without it there is nothing to rank
		// or extract, so the run fails rather than returning empty artifacts.
		log.Error("analysis failed", "error", err)
		job.AddError(fmt.Sprintf("analysis: %s", err))
		job.SetStatus(StatusFailed, "summarizing")
		return
	}
	job.SetSummaryProgress(len(sections), len(summary.StudyNotes), len(summary.QuickBullets), len(summary.ExamGuide))
	log.Info("summary complete",
		"sections", len(sections),
		"bullets", len(summary.QuickBullets),
		"notes", len(summary.StudyNotes),
		"glossary", len(summary.ExamGuide),
	)

	// Phase 3: Quiz artifacts.
	job.SetStatus(StatusQuizzing, "quizzing")
	gen := quiz.NewGenerator(w.annotator, w.questions, w.rng, log, quiz.DefaultConfig())

	hadErrors := false
	flashcards, err := gen.Flashcards(ctx, rawText, orDefault(job.Options.MaxFlashcards, w.cfg.MaxFlashcards))
	if err != nil {
		log.Error("flashcard generation failed", "error", err)
		job.AddError(fmt.Sprintf("flashcards: %s", err))
		hadErrors = true
	}
	mcqs, err := gen.MCQs(ctx, rawText, orDefault(job.Options.MaxMCQs, w.cfg.MaxMCQs))
	if err != nil {
		log.Error("mcq generation failed", "error", err)
		job.AddError(fmt.Sprintf("mcqs: %s", err))
		hadErrors = true
	}
	job.SetQuizProgress(len(flashcards), len(mcqs))

	job.SetResult(&StudyResult{
		Summary:    summary,
		Flashcards: flashcards,
		MCQs:       mcqs,
	})

	if hadErrors {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
	log.Info("job complete", "flashcards", len(flashcards), "mcqs", len(mcqs))
}

// parse turns the job input into a document: uploaded files go through the
// format parser, pasted text through the text parser directly.
func (w *Worker) parse(job *Job) (*document.Document, error) {
	fileData, rawText := job.Input()

	if rawText != "" {
		p := &parser.TextParser{}
		return p.Parse(strings.NewReader(rawText), "pasted.txt")
	}

	p, err := parser.ForFile(job.Filename)
	if err != nil {
		return nil, err
	}
	if pdfParser, ok := p.(*parser.PDFParser); ok {
		pdfParser.FallbackPdftotext = w.cfg.PDFFallbackPdftotext
	}
	return p.Parse(bytes.NewReader(fileData), job.Filename)
}

func orDefault(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
