package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// client is the shared HTTP plumbing for the three capability services.
// All of them speak the same dialect: JSON in, JSON out, bearer-less
// sidecar endpoints, 429/5xx treated as retryable.
type client struct {
	baseURL    string
	httpClient *http.Client
	stats      *ModelStats
}

func newClient(baseURL string, timeout time.Duration, stats *ModelStats) client {
	return client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		stats: stats,
	}
}

// postJSON sends a request to path and decodes the response into out.
func (c *client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if c.stats != nil {
		c.stats.Record(path, time.Since(start).Milliseconds())
	}
	if err != nil {
		return fmt.Errorf("model service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model service %s: status %d: %s", path, resp.StatusCode, truncate(string(respBody), 200))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Close releases idle connections.
func (c *client) Close() {
	c.httpClient.CloseIdleConnections()
}
