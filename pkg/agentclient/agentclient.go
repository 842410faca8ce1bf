package agentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyReply is returned when the agent answers 200 without any reply field.
var ErrEmptyReply = errors.New("agentclient: empty reply")

// IAgent asks the external assistant agent a question.
type IAgent interface {
	Ask(ctx context.Context, req *Request) (string, error)
}

// Client implements IAgent over HTTP
type Client struct {
	url    string
	client *http.Client
}

// New creates a new agent client
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{url: cfg.URL, client: cfg.HTTPClient}, nil
}

// Ask posts the question with history and returns the reply text
func (c *Client) Ask(ctx context.Context, req *Request) (string, error) {
	if req.ChatHistory == nil {
		req.ChatHistory = []HistoryEntry{}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("agent error %d: %s", resp.StatusCode, string(respBody))
	}

	var result Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	reply := result.Reply()
	if reply == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}
