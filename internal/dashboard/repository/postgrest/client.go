package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is the HTTP wrapper for a PostgREST endpoint (Supabase style,
// tables under /rest/v1).
type Client struct {
	baseURL    string
	apiKey     string
	schema     string
	httpClient *http.Client
}

// NewClient creates a new PostgREST HTTP client.
func NewClient(baseURL, apiKey, schema string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		schema:     schema,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) tableURL(table string, q url.Values) string {
	u := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, url.PathEscape(table))
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (c *Client) newRequest(ctx context.Context, method, table string, q url.Values, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.tableURL(table, q), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	if c.schema != "" {
		req.Header.Set("Accept-Profile", c.schema)
		req.Header.Set("Content-Profile", c.schema)
	}
	return req, nil
}

// Select runs GET /rest/v1/{table} and decodes the JSON array into out.
func (c *Client) Select(ctx context.Context, table string, q url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, table, q, nil)
	if err != nil {
		return fmt.Errorf("failed to build select request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call postgrest select: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("postgrest select error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode postgrest select response: %w", err)
	}
	return nil
}

// Count runs HEAD /rest/v1/{table} with an exact count and reads the total
// from Content-Range.
func (c *Client) Count(ctx context.Context, table string, q url.Values) (int, error) {
	req, err := c.newRequest(ctx, http.MethodHead, table, q, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build count request: %w", err)
	}
	req.Header.Set("Prefer", "count=exact")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call postgrest count: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return 0, fmt.Errorf("postgrest count error %d", resp.StatusCode)
	}
	return parseContentRange(resp.Header.Get("Content-Range"))
}

// Update runs PATCH /rest/v1/{table} and returns the number of rows changed.
func (c *Client) Update(ctx context.Context, table string, q url.Values, fields map[string]string) (int, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal update body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPatch, table, q, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call postgrest update: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		raw, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("postgrest update error %d: %s", resp.StatusCode, string(raw))
	}
	if resp.StatusCode == http.StatusNoContent {
		return 0, nil
	}

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return 0, fmt.Errorf("failed to decode postgrest update response: %w", err)
	}
	return len(rows), nil
}

// parseContentRange reads the total from "0-24/3573" or "*/0".
func parseContentRange(h string) (int, error) {
	i := strings.LastIndex(h, "/")
	if i < 0 || i == len(h)-1 {
		return 0, fmt.Errorf("missing total in content-range %q", h)
	}
	total := h[i+1:]
	if total == "*" {
		return 0, fmt.Errorf("content-range total unknown: %q", h)
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("invalid content-range %q: %w", h, err)
	}
	return n, nil
}
