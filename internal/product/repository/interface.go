package repository

import (
	"context"

	"coffee-assistant/internal/product"
)

// SearchResult is a product with its similarity score.
type SearchResult struct {
	Product product.Product
	Score   float64
}

// VectorRepository stores product embeddings.
type VectorRepository interface {
	EnsureCollection(ctx context.Context) error
	Upsert(ctx context.Context, products []product.Product) error
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
