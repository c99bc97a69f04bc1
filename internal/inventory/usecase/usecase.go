package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/inventory"
	"github.com/fekuna/omnipos-ledger/internal/inventory/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/pkg/logger"
	"github.com/fekuna/omnipos-ledger/internal/pkg/validate"
	"github.com/fekuna/omnipos-ledger/internal/product"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo        inventory.Repository
	productRepo product.Repository
	tx          *store.TxManager
	logger      logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, productRepo product.Repository, tx *store.TxManager, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:        repo,
		productRepo: productRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *inventoryUseCase) RecordCheck(ctx context.Context, input *dto.RecordCheckInput) (*model.InventoryCheck, error) {
	in := *input
	in.Notes = strings.TrimSpace(in.Notes)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	var check *model.InventoryCheck
	err := uc.tx.Do(ctx, func(ctx context.Context) error {
		p, err := uc.productRepo.FindByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return apperror.NotFound("product", in.ProductID)
		}

		c := &model.InventoryCheck{
			ID:               uuid.New().String(),
			ProductID:        p.ID,
			ExpectedQuantity: p.Quantity,
			CountedQuantity:  in.CountedQuantity,
			Notes:            in.Notes,
			CheckedAt:        time.Now().UTC(),
		}
		if err := uc.repo.Create(ctx, c); err != nil {
			return err
		}
		check = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	if d := check.Discrepancy(); d != 0 {
		uc.logger.Warn("inventory discrepancy",
			zap.String("product_id", check.ProductID),
			zap.Int("expected", check.ExpectedQuantity),
			zap.Int("counted", check.CountedQuantity),
			zap.Int("discrepancy", d),
		)
	}
	return check, nil
}

func (uc *inventoryUseCase) ListChecks(ctx context.Context, productID string) ([]model.InventoryCheck, error) {
	return uc.repo.FindByProduct(ctx, productID)
}
