package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/dgallion1/studygen/internal/nlp"
)

const MaxRetries = 3

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var retryErr *nlp.RetryableError
	return errors.As(err, &retryErr)
}

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}

// RetrySummarizer decorates a Summarizer with bounded retries on transient
// failures. Errors that survive the retries reach the core, whose
// extractive fallback keeps the run alive; retrying is the pipeline's
// concern, not the core's.
type RetrySummarizer struct {
	Inner nlp.Summarizer
	Log   *slog.Logger
}

func (r *RetrySummarizer) Summarize(ctx context.Context, text string, minWords, maxWords int) (string, error) {
	var lastErr error
	for attempt := range MaxRetries {
		out, err := r.Inner.Summarize(ctx, text, minWords, maxWords)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !IsRetryable(err) {
			break
		}
		r.Log.Warn("retryable summarizer error", "attempt", attempt, "error", err)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", lastErr
}
