package nlp

import (
	"context"
	"fmt"
	"time"
)

// TaggerClient calls the sentence/POS/NER tagging sidecar.
type TaggerClient struct {
	client
}

func NewTaggerClient(baseURL string, stats *ModelStats) *TaggerClient {
	return &TaggerClient{
		client: newClient(baseURL, 60*time.Second, stats),
	}
}

type annotateRequest struct {
	Text string `json:"text"`
}

type annotateResponse struct {
	Sentences []Sentence `json:"sentences"`
	Error     string     `json:"error,omitempty"`
}

// Annotate returns the sentences of text with per-token tags. Any failure
// is wrapped in an AnnotationError so callers can abort the run.
func (c *TaggerClient) Annotate(ctx context.Context, text string) ([]Sentence, error) {
	var resp annotateResponse
	if err := c.postJSON(ctx, "/annotate", annotateRequest{Text: text}, &resp); err != nil {
		return nil, &AnnotationError{Err: err}
	}
	if resp.Error != "" {
		return nil, &AnnotationError{Err: fmt.Errorf("tagger: %s", resp.Error)}
	}
	return resp.Sentences, nil
}
