package inventory

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
)

type Repository interface {
	Create(ctx context.Context, check *model.InventoryCheck) error
	// FindByProduct lists checks newest first.
	FindByProduct(ctx context.Context, productID string) ([]model.InventoryCheck, error)

	CountByProduct(ctx context.Context, productID string) (int, error)
	DeleteByProduct(ctx context.Context, productID string) error
}
