package usecase

import (
	"context"

	"coffee-assistant/internal/outlet"
	"coffee-assistant/internal/outlet/repository"
	"coffee-assistant/pkg/llmprovider"
	"coffee-assistant/pkg/log"
)

// LLM is the text generation dependency used for text-to-SQL.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	llm  LLM
}

var _ outlet.UseCase = (*implUseCase)(nil)

// New creates the outlet use case. llm may be nil, in which case Query always
// uses the keyword search.
func New(l log.Logger, repo repository.Repository, llm LLM) *implUseCase {
	return &implUseCase{l: l, repo: repo, llm: llm}
}
