package nlp

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// SummarizerClient calls the abstractive summarization sidecar
// (a distilbart-style model server).
type SummarizerClient struct {
	client
}

func NewSummarizerClient(baseURL string, stats *ModelStats) *SummarizerClient {
	return &SummarizerClient{
		client: newClient(baseURL, 120*time.Second, stats),
	}
}

type summarizeRequest struct {
	Text      string `json:"text"`
	MinLength int    `json:"min_length"`
	MaxLength int    `json:"max_length"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
	Error   string `json:"error,omitempty"`
}

// Summarize compresses text into a summary bounded by the given word counts.
func (c *SummarizerClient) Summarize(ctx context.Context, text string, minWords, maxWords int) (string, error) {
	req := summarizeRequest{
		Text:      text,
		MinLength: minWords,
		MaxLength: maxWords,
	}
	var resp summarizeResponse
	if err := c.postJSON(ctx, "/summarize", req, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", fmt.Errorf("summarizer: %s", resp.Error)
	}
	summary := strings.TrimSpace(resp.Summary)
	if summary == "" {
		return "", fmt.Errorf("summarizer returned empty summary")
	}
	return summary, nil
}
