package usecase

import (
	"context"

	"fms-dashboard/pkg/llmprovider"
	pkgLog "fms-dashboard/pkg/log"
)

// maxHistory caps the number of earlier turns forwarded to providers.
const maxHistory = 20

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l   pkgLog.Logger
	llm Generator
}

// New creates the assistant use case.
func New(l pkgLog.Logger, llm Generator) *implUseCase {
	if llm == nil {
		panic("assistant/usecase: generator is required")
	}
	return &implUseCase{l: l, llm: llm}
}
