package supply

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/supply/dto"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, supply *model.Supply) error
	FindByID(ctx context.Context, id string) (*model.Supply, error)
	// FindAll lists newest first.
	FindAll(ctx context.Context, filters *dto.SupplyFilters) ([]model.Supply, error)
	SumCost(ctx context.Context, filters *dto.SupplyFilters) (decimal.Decimal, error)

	CountByProduct(ctx context.Context, productID string) (int, error)
	DeleteByProduct(ctx context.Context, productID string) error
}
