package supply

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/supply/dto"
)

type UseCase interface {
	AddSupply(ctx context.Context, input *dto.AddSupplyInput) (*model.Supply, error)
	GetSupply(ctx context.Context, id string) (*model.Supply, error)
	ListSupplies(ctx context.Context, filters *dto.SupplyFilters) ([]model.Supply, error)
}
