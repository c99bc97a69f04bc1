package product

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)

	// DeleteProduct removes the product with its sales, supplies and inventory checks.
	// It returns false, nil when the product does not exist.
	DeleteProduct(ctx context.Context, id string) (bool, error)
	RelatedCounts(ctx context.Context, id string) (*model.ProductRelations, error)
}
