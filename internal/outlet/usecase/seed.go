package usecase

import (
	"context"

	"coffee-assistant/internal/outlet"
)

// Seed migrates the store and inserts DefaultOutlets when it is empty.
func (uc *implUseCase) Seed(ctx context.Context) error {
	if err := uc.repo.Migrate(ctx); err != nil {
		return err
	}

	n, err := uc.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		uc.l.Debugf(ctx, "internal.outlet.usecase.Seed: %d outlets present, skipping", n)
		return nil
	}

	if err := uc.repo.Insert(ctx, outlet.DefaultOutlets); err != nil {
		return err
	}
	uc.l.Infof(ctx, "internal.outlet.usecase.Seed: inserted %d outlets", len(outlet.DefaultOutlets))
	return nil
}
