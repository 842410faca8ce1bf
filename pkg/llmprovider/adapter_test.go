package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fms-dashboard/config"
	"fms-dashboard/pkg/agentclient"
	"fms-dashboard/pkg/chatcompletion"
)

type fakeAgent struct {
	got    *agentclient.Request
	answer string
	err    error
}

func (f *fakeAgent) Ask(ctx context.Context, req *agentclient.Request) (string, error) {
	f.got = req
	return f.answer, f.err
}

type fakeChat struct {
	got  *chatcompletion.Request
	resp *chatcompletion.Response
}

func (f *fakeChat) GenerateContent(ctx context.Context, req *chatcompletion.Request) (*chatcompletion.Response, error) {
	f.got = req
	return f.resp, nil
}

func (f *fakeChat) Model() string { return "fake-model" }

func conversation() *Request {
	return &Request{
		SystemInstruction: &Message{Role: RoleSystem, Text: "be brief"},
		Messages: []Message{
			{Role: RoleUser, Text: "hi"},
			{Role: RoleAssistant, Text: "hello"},
			{Role: RoleUser, Text: "how many tasks?"},
		},
		Metadata: map[string]string{MetadataCompany: "Acme"},
	}
}

func TestAgentAdapter(t *testing.T) {
	agent := &fakeAgent{answer: "42"}
	resp, err := NewAgentAdapter(agent).GenerateContent(context.Background(), conversation())
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}

	if resp.Content.Text != "42" || resp.ProviderName != AgentName || resp.Usage != nil {
		t.Errorf("response = %+v", resp)
	}
	if agent.got.Question != "how many tasks?" || agent.got.CompanyName != "Acme" {
		t.Errorf("request = %+v", agent.got)
	}
	want := []agentclient.HistoryEntry{{Type: "human", Content: "hi"}, {Type: "ai", Content: "hello"}}
	if len(agent.got.ChatHistory) != 2 || agent.got.ChatHistory[0] != want[0] || agent.got.ChatHistory[1] != want[1] {
		t.Errorf("history = %+v", agent.got.ChatHistory)
	}
}

func TestAgentAdapterError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewAgentAdapter(&fakeAgent{err: boom}).GenerateContent(context.Background(), conversation())
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
}

func TestChatCompletionAdapter(t *testing.T) {
	chat := &fakeChat{resp: &chatcompletion.Response{
		Choices: []chatcompletion.Choice{{Message: chatcompletion.Message{Role: "assistant", Content: "three"}}},
		Usage:   chatcompletion.Usage{PromptTokens: 10, CompletionTokens: 1, TotalTokens: 11},
	}}

	resp, err := NewChatCompletionAdapter("openai", chat).GenerateContent(context.Background(), conversation())
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if resp.Content.Text != "three" || resp.ProviderName != "openai" || resp.ModelName != "fake-model" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 11 {
		t.Errorf("usage = %+v", resp.Usage)
	}

	if len(chat.got.Messages) != 4 || chat.got.Messages[0].Role != RoleSystem || chat.got.Messages[3].Content != "how many tasks?" {
		t.Errorf("messages = %+v", chat.got.Messages)
	}
}

func TestChatCompletionAdapterEmpty(t *testing.T) {
	chat := &fakeChat{resp: &chatcompletion.Response{}}
	_, err := NewChatCompletionAdapter("openai", chat).GenerateContent(context.Background(), conversation())
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("error = %v, want ErrEmptyResponse", err)
	}
}

func TestInitializeProviders(t *testing.T) {
	cfg := &config.AssistantConfig{
		AgentURL: "http://127.0.0.1:8000/chat",
		Providers: []config.ProviderConfig{
			{Name: "second", Enabled: true, Priority: 2, APIKey: "k2"},
			{Name: "first", Enabled: true, Priority: 1, APIKey: "k1"},
			{Name: "off", Enabled: false, Priority: 0, APIKey: "k0"},
			{Name: "nokey", Enabled: true, Priority: 3},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, &mockLogger{})
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}

	var names []string
	for _, p := range providers {
		names = append(names, p.Name())
	}
	if len(names) != 3 || names[0] != AgentName || names[1] != "first" || names[2] != "second" {
		t.Errorf("providers = %v", names)
	}
}

func TestInitializeProvidersNone(t *testing.T) {
	_, err := InitializeProviders(context.Background(), &config.AssistantConfig{}, &mockLogger{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("error = %v, want ErrNoProvidersConfigured", err)
	}
}

func TestEndToEndFallback(t *testing.T) {
	agentSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer agentSrv.Close()

	chatSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatcompletion.Response{
			Model:   "m",
			Choices: []chatcompletion.Choice{{Message: chatcompletion.Message{Role: "assistant", Content: "from fallback"}}},
		})
	}))
	defer chatSrv.Close()

	providers, err := InitializeProviders(context.Background(), &config.AssistantConfig{
		AgentURL:  agentSrv.URL,
		Providers: []config.ProviderConfig{{Name: "openai", Enabled: true, Priority: 1, APIKey: "k", BaseURL: chatSrv.URL}},
	}, &mockLogger{})
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}

	manager := NewManager(providers, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{})
	resp, err := manager.GenerateContent(context.Background(), conversation())
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if resp.ProviderName != "openai" || resp.Content.Text != "from fallback" {
		t.Errorf("response = %+v", resp)
	}
}
