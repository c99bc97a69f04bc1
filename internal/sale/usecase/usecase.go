package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/customer"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/pkg/lock"
	"github.com/fekuna/omnipos-ledger/internal/pkg/logger"
	"github.com/fekuna/omnipos-ledger/internal/pkg/validate"
	"github.com/fekuna/omnipos-ledger/internal/product"
	"github.com/fekuna/omnipos-ledger/internal/sale"
	"github.com/fekuna/omnipos-ledger/internal/sale/dto"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type saleUseCase struct {
	repo         sale.Repository
	productRepo  product.Repository
	customerRepo customer.Repository
	tx           *store.TxManager
	locker       lock.Locker
	logger       logger.ZapLogger
}

func NewSaleUseCase(
	repo sale.Repository,
	productRepo product.Repository,
	customerRepo customer.Repository,
	tx *store.TxManager,
	locker lock.Locker,
	log logger.ZapLogger,
) sale.UseCase {
	return &saleUseCase{
		repo:         repo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		tx:           tx,
		locker:       locker,
		logger:       log,
	}
}

func (uc *saleUseCase) RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.Sale, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	release, err := lock.Acquire(ctx, uc.locker, lock.ProductKey(input.ProductID), lock.DefaultOptions)
	if err != nil {
		uc.logger.Error("failed to acquire product lock", zap.String("product_id", input.ProductID), zap.Error(err))
		return nil, apperror.Storage("store busy, try again", err)
	}
	defer release()

	var recorded *model.Sale
	err = uc.tx.Do(ctx, func(ctx context.Context) error {
		p, err := uc.productRepo.FindByID(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return apperror.NotFound("product", input.ProductID)
		}
		if input.Quantity > p.Quantity {
			return apperror.InsufficientStock(p.ID, input.Quantity, p.Quantity)
		}

		var c *model.Customer
		if input.CustomerID != nil {
			c, err = uc.customerRepo.FindByID(ctx, *input.CustomerID)
			if err != nil {
				return err
			}
			if c == nil {
				return apperror.NotFound("customer", *input.CustomerID)
			}
		}

		discount := decimal.Zero
		if c != nil {
			discount = c.Discount
		}
		s := &model.Sale{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			Quantity:  input.Quantity,
			UnitPrice: p.Price,
			Total:     model.SaleTotal(p.Price, input.Quantity, discount),
			SaleDate:  time.Now().UTC(),
		}

		ok, err := uc.productRepo.AdjustQuantity(ctx, p.ID, -input.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			// Stock moved between the read and the write.
			return apperror.InsufficientStock(p.ID, input.Quantity, p.Quantity)
		}

		if c != nil {
			id := c.ID
			s.CustomerID = &id
			if err := uc.customerRepo.SetTotalPurchases(ctx, c.ID, c.TotalPurchases.Add(s.Total)); err != nil {
				return err
			}
		}

		if err := uc.repo.Create(ctx, s); err != nil {
			return err
		}
		recorded = s
		return nil
	})
	if err != nil {
		if errors.Is(err, apperror.ErrInsufficientStock) {
			uc.logger.Warn("sale rejected", zap.String("product_id", input.ProductID), zap.Error(err))
		}
		return nil, err
	}

	uc.logger.Info("sale recorded",
		zap.String("sale_id", recorded.ID),
		zap.String("product_id", recorded.ProductID),
		zap.Int("quantity", recorded.Quantity),
		zap.String("total", recorded.Total.String()),
	)
	return recorded, nil
}

func (uc *saleUseCase) GetSale(ctx context.Context, id string) (*model.Sale, error) {
	return uc.repo.FindByID(ctx, id)
}
