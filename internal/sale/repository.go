package sale

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/sale/dto"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, sale *model.Sale) error
	FindByID(ctx context.Context, id string) (*model.Sale, error)
	FindAll(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, error)
	SumTotal(ctx context.Context, filters *dto.SaleFilters) (decimal.Decimal, error)

	// BestSelling ranks products by units sold, ties by product id.
	BestSelling(ctx context.Context, limit int) ([]model.ProductSales, error)

	CountByProduct(ctx context.Context, productID string) (int, error)
	DeleteByProduct(ctx context.Context, productID string) error
}
