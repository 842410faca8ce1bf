package usecase

import (
	"context"
	"fmt"
	"strings"

	"fms-dashboard/internal/assistant"
	"fms-dashboard/internal/model"
	"fms-dashboard/pkg/llmprovider"
)

const systemPrompt = `You are the assistant of an FMS task dashboard. Tasks move through three phases ` +
	`(planned1/actual1, planned2/actual2, planned3/actual3). Working hours are 10:00-18:00, Monday to Saturday. ` +
	`Answer briefly and only about the user's tasks.`

// Chat forwards the question with its history to the provider chain.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyQuestion
	}

	company := strings.TrimSpace(input.CompanyName)
	if company == "" {
		company = sc.CompanyName
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: llmprovider.RoleSystem, Text: instruction(company)},
		Messages:          append(history(input.History), llmprovider.Message{Role: llmprovider.RoleUser, Text: question}),
		Metadata:          map[string]string{llmprovider.MetadataCompany: company},
	})
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.Chat: %v", err)
		return assistant.ChatOutput{}, fmt.Errorf("%w: %v", assistant.ErrUnavailable, err)
	}

	return assistant.ChatOutput{
		Answer:   resp.Content.Text,
		Provider: resp.ProviderName,
	}, nil
}

func instruction(company string) string {
	if company == "" {
		return systemPrompt
	}
	return systemPrompt + " The user belongs to the company " + company + "."
}

// history keeps the most recent non-empty turns.
func history(in []assistant.ChatMessage) []llmprovider.Message {
	msgs := make([]llmprovider.Message, 0, len(in))
	for _, m := range in {
		text := strings.TrimSpace(m.Text)
		if text == "" {
			continue
		}
		role := llmprovider.RoleAssistant
		if strings.EqualFold(m.Sender, assistant.SenderUser) {
			role = llmprovider.RoleUser
		}
		msgs = append(msgs, llmprovider.Message{Role: role, Text: text})
	}
	if len(msgs) > maxHistory {
		msgs = msgs[len(msgs)-maxHistory:]
	}
	return msgs
}
