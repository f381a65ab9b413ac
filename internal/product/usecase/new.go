package usecase

import (
	"context"

	"coffee-assistant/internal/product"
	"coffee-assistant/internal/product/repository"
	"coffee-assistant/pkg/llmprovider"
	"coffee-assistant/pkg/log"
)

// LLM generates the search summary.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l           log.Logger
	repo        repository.VectorRepository
	llm         LLM
	defaultTopK int
}

var _ product.UseCase = (*implUseCase)(nil)

// New creates the product search use case. llm may be nil, in which case the
// summary is always the templated fallback.
func New(l log.Logger, repo repository.VectorRepository, llm LLM, defaultTopK int) *implUseCase {
	if defaultTopK <= 0 {
		defaultTopK = product.DefaultTopK
	}
	return &implUseCase{l: l, repo: repo, llm: llm, defaultTopK: defaultTopK}
}
