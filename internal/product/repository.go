package product

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error

	IsBarcodeUnique(ctx context.Context, barcode, excludeID string) (bool, error)

	// AdjustQuantity applies delta only if the result stays >= 0.
	// It reports false when the row is missing or the stock would go negative.
	AdjustQuantity(ctx context.Context, id string, delta int) (bool, error)
}
