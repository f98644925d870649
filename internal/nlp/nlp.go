// Package nlp defines the model capabilities the pipeline consumes and
// their HTTP clients. The pipeline never loads models itself; tagging,
// abstractive summarization, and question generation run behind sidecar
// services and are treated as synchronous black boxes.
package nlp

import (
	"context"
	"fmt"
)

// Token is a single token with its part-of-speech class and optional
// named-entity tag, as produced by the tagging service.
type Token struct {
	Text string `json:"text"`
	POS  string `json:"pos"`           // Universal POS tag, e.g. "NOUN", "PROPN", "VERB"
	Ent  string `json:"ent,omitempty"` // Entity label, empty when untagged
}

// Sentence is a sentence span with its tokens.
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

// NounLike reports whether the token is a noun or proper noun.
func (t Token) NounLike() bool {
	return t.POS == "NOUN" || t.POS == "PROPN"
}

// Annotator supplies sentence boundaries and per-token tags.
// An annotation failure is fatal to a run: without sentence and tag data
// neither ranking nor keyword extraction can proceed.
type Annotator interface {
	Annotate(ctx context.Context, text string) ([]Sentence, error)
}

// Summarizer produces an abstractive summary bounded by word counts.
type Summarizer interface {
	Summarize(ctx context.Context, text string, minWords, maxWords int) (string, error)
}

// QuestionGenerator turns a source sentence into a question.
type QuestionGenerator interface {
	Generate(ctx context.Context, sentence string) (string, error)
}

// AnnotationError wraps a tagging-service failure. Callers treat it as
// fatal to the document run.
type AnnotationError struct {
	Err error
}

func (e *AnnotationError) Error() string {
	return fmt.Sprintf("annotation failed: %s", e.Err)
}

func (e *AnnotationError) Unwrap() error {
	return e.Err
}

// RetryableError indicates a transient capability failure worth retrying.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
