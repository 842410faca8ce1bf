package chatcompletion

import "context"

// IChatCompletion is an OpenAI-compatible chat completions client.
type IChatCompletion interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
