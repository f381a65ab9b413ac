package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"coffee-assistant/internal/product"
	"coffee-assistant/internal/product/repository"
	pkgQdrant "coffee-assistant/pkg/qdrant"
	"coffee-assistant/pkg/voyage"
)

// productNamespace derives stable point IDs from product names.
var productNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func (r *implRepository) EnsureCollection(ctx context.Context) error {
	exists, err := r.client.CollectionExists(ctx, r.collectionName)
	if err != nil {
		r.l.Errorf(ctx, "internal.product.repository.qdrant.EnsureCollection: %v", err)
		return fmt.Errorf("check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name:    r.collectionName,
		Vectors: pkgQdrant.VectorConfig{Size: r.vectorSize, Distance: pkgQdrant.DistanceCosine},
	})
	if err != nil {
		r.l.Errorf(ctx, "internal.product.repository.qdrant.EnsureCollection: %v", err)
		return fmt.Errorf("create collection: %w", err)
	}

	r.l.Infof(ctx, "internal.product.repository.qdrant.EnsureCollection: created %s (size=%d)", r.collectionName, r.vectorSize)
	return nil
}

// Upsert embeds all products in one batch and writes them with name-derived IDs.
func (r *implRepository) Upsert(ctx context.Context, products []product.Product) error {
	if len(products) == 0 {
		return nil
	}

	texts := make([]string, len(products))
	for i, p := range products {
		texts[i] = embeddingText(p)
	}

	vectors, err := r.embedder.Embed(ctx, texts, voyage.InputTypeDocument)
	if err != nil {
		r.l.Errorf(ctx, "internal.product.repository.qdrant.Upsert: failed to generate embeddings: %v", err)
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(vectors) != len(products) {
		return fmt.Errorf("embedding count mismatch: got %d, want %d", len(vectors), len(products))
	}

	points := make([]pkgQdrant.Point, len(products))
	for i, p := range products {
		points[i] = pkgQdrant.Point{
			ID:      pointID(p.Name),
			Vector:  vectors[i],
			Payload: toPayload(p),
		}
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "internal.product.repository.qdrant.Upsert: failed to upsert points: %v", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

func (r *implRepository) Search(ctx context.Context, query string, limit int) ([]repository.SearchResult, error) {
	vectors, err := r.embedder.Embed(ctx, []string{query}, voyage.InputTypeQuery)
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "internal.product.repository.qdrant.Search: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "internal.product.repository.qdrant.Search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]repository.SearchResult, 0, len(resp.Result))
	for _, scored := range resp.Result {
		p, ok := fromPayload(scored.Payload)
		if !ok {
			r.l.Warnf(ctx, "internal.product.repository.qdrant.Search: malformed payload for point %v", scored.ID)
			continue
		}
		results = append(results, repository.SearchResult{Product: p, Score: scored.Score})
	}
	return results, nil
}
