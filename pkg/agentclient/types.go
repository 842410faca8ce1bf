package agentclient

import (
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds a single agent round trip
	DefaultTimeout = 90 * time.Second

	// TypeHuman and TypeAI are the history entry types the agent understands.
	TypeHuman = "human"
	TypeAI    = "ai"
)

// Config holds agent client configuration
type Config struct {
	URL        string
	HTTPClient *http.Client
}

// Validate fills defaults and checks required fields
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("agentclient: URL is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Request is the body posted to the agent
type Request struct {
	Question    string         `json:"question"`
	ChatHistory []HistoryEntry `json:"chat_history"`
	CompanyName string         `json:"company_name"`
}

// HistoryEntry is one prior turn
type HistoryEntry struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Response is the agent reply. Deployments disagree on the field name.
type Response struct {
	Answer   string `json:"answer"`
	Response string `json:"response"`
	Message  string `json:"message"`
	Text     string `json:"text"`
}

// Reply returns the first non-empty reply field.
func (r Response) Reply() string {
	for _, s := range []string{r.Answer, r.Response, r.Message, r.Text} {
		if s != "" {
			return s
		}
	}
	return ""
}
