package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Request is the JSON body posted to the webhook endpoint.
type Request struct {
	Question  string `json:"question"`
	Timestamp string `json:"timestamp"`
}

// Client performs question exchanges against an external webhook.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a webhook client. A zero timeout means requests
// wait for the webhook indefinitely.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ask posts the question to the webhook URL and parses the response
// payload. Any 2xx status counts as success; everything else, including
// transport failures and non-JSON bodies, is an error.
func (c *Client) Ask(ctx context.Context, url, question string, asked time.Time) (Result, error) {
	payload := Request{
		Question:  question,
		Timestamp: asked.UTC().Format(time.RFC3339),
	}
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to reach webhook: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("webhook request failed: %s - %s", resp.Status, string(body))
	}

	result, err := ParseResult(body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse webhook response: %w", err)
	}
	return result, nil
}
