package usecase

import (
	"context"
	"fmt"
	"strings"

	"coffee-assistant/internal/product"
	"coffee-assistant/pkg/llmprovider"
)

const summarySystemPrompt = "You are a helpful shopping assistant. Summarize the search results in a natural way, highlighting key features and relevance to the query."

func (uc *implUseCase) Search(ctx context.Context, query string, topK int) (product.SearchOutput, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return product.SearchOutput{}, product.ErrEmptyQuery
	}
	if topK <= 0 {
		topK = uc.defaultTopK
	}
	topK = min(topK, product.MaxTopK)

	hits, err := uc.repo.Search(ctx, query, topK)
	if err != nil {
		uc.l.Errorf(ctx, "internal.product.usecase.Search: %v", err)
		return product.SearchOutput{}, fmt.Errorf("%w: %w", product.ErrUnavailable, err)
	}

	results := make([]product.Product, len(hits))
	for i, h := range hits {
		results[i] = h.Product
	}

	if len(results) == 0 {
		return product.SearchOutput{Results: results, Summary: product.MsgNoResults}, nil
	}
	return product.SearchOutput{Results: results, Summary: uc.summarize(ctx, query, results)}, nil
}

// summarize asks the LLM for a short summary and falls back to a template.
func (uc *implUseCase) summarize(ctx context.Context, query string, results []product.Product) string {
	fallback := fmt.Sprintf(product.MsgFallbackSummary, len(results), results[0].Name)
	if uc.llm == nil {
		return fallback
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Query: %s\n\nFound products:\n", query)
	for _, p := range results {
		fmt.Fprintf(&sb, "- %s: %s (RM%.2f)\n", p.Name, p.Description, p.Price)
	}

	system := llmprovider.TextMessage(llmprovider.RoleSystem, summarySystemPrompt)
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, sb.String())},
		Temperature:       0.7,
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.product.usecase.summarize: %v", err)
		return fallback
	}

	summary := strings.TrimSpace(resp.Content.Text())
	if summary == "" {
		return fallback
	}
	return summary
}
