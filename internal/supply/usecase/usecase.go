package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/pkg/lock"
	"github.com/fekuna/omnipos-ledger/internal/pkg/logger"
	"github.com/fekuna/omnipos-ledger/internal/pkg/validate"
	"github.com/fekuna/omnipos-ledger/internal/product"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/fekuna/omnipos-ledger/internal/supply"
	"github.com/fekuna/omnipos-ledger/internal/supply/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type supplyUseCase struct {
	repo        supply.Repository
	productRepo product.Repository
	tx          *store.TxManager
	locker      lock.Locker
	logger      logger.ZapLogger
}

func NewSupplyUseCase(repo supply.Repository, productRepo product.Repository, tx *store.TxManager, locker lock.Locker, log logger.ZapLogger) supply.UseCase {
	return &supplyUseCase{
		repo:        repo,
		productRepo: productRepo,
		tx:          tx,
		locker:      locker,
		logger:      log,
	}
}

func (uc *supplyUseCase) AddSupply(ctx context.Context, input *dto.AddSupplyInput) (*model.Supply, error) {
	in := *input
	in.Supplier = strings.TrimSpace(in.Supplier)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	release, err := lock.Acquire(ctx, uc.locker, lock.ProductKey(in.ProductID), lock.DefaultOptions)
	if err != nil {
		uc.logger.Error("failed to acquire product lock", zap.String("product_id", in.ProductID), zap.Error(err))
		return nil, apperror.Storage("store busy, try again", err)
	}
	defer release()

	var added *model.Supply
	err = uc.tx.Do(ctx, func(ctx context.Context) error {
		p, err := uc.productRepo.FindByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return apperror.NotFound("product", in.ProductID)
		}

		if _, err := uc.productRepo.AdjustQuantity(ctx, p.ID, in.Quantity); err != nil {
			return err
		}

		s := &model.Supply{
			ID:         uuid.New().String(),
			Supplier:   in.Supplier,
			ProductID:  p.ID,
			Quantity:   in.Quantity,
			Cost:       in.Cost,
			SupplyDate: time.Now().UTC(),
		}
		if err := uc.repo.Create(ctx, s); err != nil {
			return err
		}
		added = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("supply received",
		zap.String("supply_id", added.ID),
		zap.String("product_id", added.ProductID),
		zap.String("supplier", added.Supplier),
		zap.Int("quantity", added.Quantity),
	)
	return added, nil
}

func (uc *supplyUseCase) GetSupply(ctx context.Context, id string) (*model.Supply, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *supplyUseCase) ListSupplies(ctx context.Context, filters *dto.SupplyFilters) ([]model.Supply, error) {
	return uc.repo.FindAll(ctx, filters)
}
