package usecase

import (
	"context"

	"coffee-assistant/internal/product"
)

func (uc *implUseCase) Seed(ctx context.Context) error {
	if err := uc.repo.EnsureCollection(ctx); err != nil {
		return err
	}
	if err := uc.repo.Upsert(ctx, product.DefaultProducts); err != nil {
		return err
	}
	uc.l.Infof(ctx, "internal.product.usecase.Seed: indexed %d products", len(product.DefaultProducts))
	return nil
}
