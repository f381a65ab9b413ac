package repository

import (
	"context"

	"coffee-assistant/internal/outlet"
)

// Repository is the outlet data store.
type Repository interface {
	Migrate(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, outlets []outlet.Outlet) error
	// GetByArea returns a zero-value Outlet (ID == 0) when nothing matches.
	GetByArea(ctx context.Context, area string) (outlet.Outlet, error)
	ListByCity(ctx context.Context, city string) ([]outlet.Outlet, error)
	// Search matches term against name and address.
	Search(ctx context.Context, term string) ([]outlet.Outlet, error)
	// Select runs a read-only statement over the outlets table. Columns not
	// present in the outlets schema are ignored.
	Select(ctx context.Context, statement string) ([]outlet.Outlet, error)
}
