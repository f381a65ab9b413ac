package outlet

import "context"

// UseCase answers outlet questions.
type UseCase interface {
	// Lookup answers a planner-resolved outlet question. location and infoType
	// use the planner vocabulary; either may be empty.
	Lookup(ctx context.Context, location, infoType string) (string, error)
	// Query runs a natural-language search over the outlet table.
	Query(ctx context.Context, query string) (QueryOutput, error)
	// Seed creates the outlet table and fills it once.
	Seed(ctx context.Context) error
}
