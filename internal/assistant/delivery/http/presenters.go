package http

import "fms-dashboard/internal/assistant"

type chatMessageReq struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type chatReq struct {
	Question    string           `json:"question"`
	ChatHistory []chatMessageReq `json:"chat_history"`
	CompanyName string           `json:"company_name"`
}

func (r chatReq) toInput() assistant.ChatInput {
	in := assistant.ChatInput{Question: r.Question, CompanyName: r.CompanyName}
	for _, m := range r.ChatHistory {
		in.History = append(in.History, assistant.ChatMessage{Sender: m.Sender, Text: m.Text})
	}
	return in
}

type chatResp struct {
	Answer   string `json:"answer"`
	Provider string `json:"provider"`
}

func (h *handler) newChatResp(o assistant.ChatOutput) chatResp {
	return chatResp{Answer: o.Answer, Provider: o.Provider}
}
