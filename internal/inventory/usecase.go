package inventory

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/inventory/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
)

type UseCase interface {
	// RecordCheck stores a physical count against the current stock level.
	// Stock itself is left alone; corrections go through supplies or product updates.
	RecordCheck(ctx context.Context, input *dto.RecordCheckInput) (*model.InventoryCheck, error)
	ListChecks(ctx context.Context, productID string) ([]model.InventoryCheck, error)
}
