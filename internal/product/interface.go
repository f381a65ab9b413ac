package product

import "context"

// UseCase searches the product catalogue.
type UseCase interface {
	// Search returns up to topK products similar to query with a short summary.
	// topK <= 0 uses the configured default.
	Search(ctx context.Context, query string, topK int) (SearchOutput, error)
	// Seed indexes DefaultProducts. Safe to call on every start.
	Seed(ctx context.Context) error
}
