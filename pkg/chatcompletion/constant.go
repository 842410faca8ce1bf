package chatcompletion

import "time"

const (
	// DefaultBaseURL is the default OpenAI-compatible API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout bounds a single HTTP round trip
	DefaultTimeout = 60 * time.Second

	completionsPath = "/chat/completions"
)
