package assistant

// Senders used in ChatMessage.Sender. Anything other than SenderUser is
// treated as an assistant turn.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// ChatMessage is one earlier turn of the conversation.
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type ChatInput struct {
	Question    string
	History     []ChatMessage
	CompanyName string
}

type ChatOutput struct {
	Answer   string `json:"answer"`
	Provider string `json:"provider"`
}
