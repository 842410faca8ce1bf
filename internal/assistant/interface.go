package assistant

import (
	"context"

	"fms-dashboard/internal/model"
)

// UseCase answers questions about the caller's tasks through the LLM provider chain.
type UseCase interface {
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}
