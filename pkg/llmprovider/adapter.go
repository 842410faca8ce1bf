package llmprovider

import (
	"context"
	"strings"

	"fms-dashboard/pkg/agentclient"
	"fms-dashboard/pkg/chatcompletion"
)

// AgentName is the provider name of the external assistant agent.
const AgentName = "agent"

// AgentAdapter adapts pkg/agentclient to the Provider interface.
// The agent keeps its own prompt, so SystemInstruction is ignored.
type AgentAdapter struct {
	client agentclient.IAgent
}

// NewAgentAdapter creates a new agent adapter
func NewAgentAdapter(client agentclient.IAgent) *AgentAdapter {
	return &AgentAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *AgentAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	last := req.Messages[len(req.Messages)-1]
	history := make([]agentclient.HistoryEntry, 0, len(req.Messages)-1)
	for _, m := range req.Messages[:len(req.Messages)-1] {
		kind := agentclient.TypeAI
		if m.Role == RoleUser {
			kind = agentclient.TypeHuman
		}
		history = append(history, agentclient.HistoryEntry{Type: kind, Content: m.Text})
	}

	answer, err := a.client.Ask(ctx, &agentclient.Request{
		Question:    last.Text,
		ChatHistory: history,
		CompanyName: req.Metadata[MetadataCompany],
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Text: answer},
		ProviderName: AgentName,
		ModelName:    AgentName,
	}, nil
}

// Name returns provider name
func (a *AgentAdapter) Name() string {
	return AgentName
}

// Model returns model name
func (a *AgentAdapter) Model() string {
	return AgentName
}

// ChatCompletionAdapter adapts an OpenAI-compatible client to the Provider interface
type ChatCompletionAdapter struct {
	name   string
	client chatcompletion.IChatCompletion
}

// NewChatCompletionAdapter creates a new adapter reporting itself as name
func NewChatCompletionAdapter(name string, client chatcompletion.IChatCompletion) *ChatCompletionAdapter {
	return &ChatCompletionAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *ChatCompletionAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]chatcompletion.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil && req.SystemInstruction.Text != "" {
		messages = append(messages, chatcompletion.Message{Role: RoleSystem, Content: req.SystemInstruction.Text})
	}
	for _, m := range req.Messages {
		messages = append(messages, chatcompletion.Message{Role: convertRole(m.Role), Content: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, &chatcompletion.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return convertFromChatCompletion(a.name, a.client.Model(), resp)
}

// Name returns provider name
func (a *ChatCompletionAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *ChatCompletionAdapter) Model() string {
	return a.client.Model()
}

func convertRole(role string) string {
	switch role {
	case RoleUser, RoleSystem:
		return role
	default:
		return RoleAssistant
	}
}

func convertFromChatCompletion(name, model string, resp *chatcompletion.Response) (*Response, error) {
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, ErrEmptyResponse
	}
	if resp.Model != "" {
		model = resp.Model
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Text: resp.Choices[0].Message.Content},
		ProviderName: name,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
