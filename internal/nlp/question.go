package nlp

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// QuestionClient calls the question-generation sidecar (a T5-qg-style
// model server).
type QuestionClient struct {
	client
}

func NewQuestionClient(baseURL string, stats *ModelStats) *QuestionClient {
	return &QuestionClient{
		client: newClient(baseURL, 60*time.Second, stats),
	}
}

type questionRequest struct {
	Sentence string `json:"sentence"`
}

type questionResponse struct {
	Question string `json:"question"`
	Error    string `json:"error,omitempty"`
}

// Generate produces a question whose answer is the given sentence.
func (c *QuestionClient) Generate(ctx context.Context, sentence string) (string, error) {
	var resp questionResponse
	if err := c.postJSON(ctx, "/generate-question", questionRequest{Sentence: sentence}, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", fmt.Errorf("question generator: %s", resp.Error)
	}
	question := strings.TrimSpace(resp.Question)
	if question == "" {
		return "", fmt.Errorf("question generator returned empty question")
	}
	return question, nil
}
