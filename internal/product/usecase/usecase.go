package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/inventory"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/pkg/lock"
	"github.com/fekuna/omnipos-ledger/internal/pkg/logger"
	"github.com/fekuna/omnipos-ledger/internal/pkg/validate"
	"github.com/fekuna/omnipos-ledger/internal/product"
	"github.com/fekuna/omnipos-ledger/internal/product/dto"
	"github.com/fekuna/omnipos-ledger/internal/sale"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/fekuna/omnipos-ledger/internal/supply"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo          product.Repository
	saleRepo      sale.Repository
	supplyRepo    supply.Repository
	inventoryRepo inventory.Repository
	tx            *store.TxManager
	locker        lock.Locker
	logger        logger.ZapLogger
}

func NewProductUseCase(
	repo product.Repository,
	saleRepo sale.Repository,
	supplyRepo supply.Repository,
	inventoryRepo inventory.Repository,
	tx *store.TxManager,
	locker lock.Locker,
	log logger.ZapLogger,
) product.UseCase {
	return &productUseCase{
		repo:          repo,
		saleRepo:      saleRepo,
		supplyRepo:    supplyRepo,
		inventoryRepo: inventoryRepo,
		tx:            tx,
		locker:        locker,
		logger:        log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	in := *input
	in.Name = strings.TrimSpace(in.Name)
	in.Barcode = strings.TrimSpace(in.Barcode)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &model.Product{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		Barcode:     validate.Optional(in.Barcode),
		Description: validate.Optional(in.Description),
	}

	err := uc.tx.Do(ctx, func(ctx context.Context) error {
		if p.Barcode != nil {
			if err := uc.checkBarcode(ctx, *p.Barcode, ""); err != nil {
				return err
			}
		}
		return uc.repo.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("product created", zap.String("product_id", p.ID), zap.String("category", p.Category.String()))
	return p, nil
}

func (uc *productUseCase) checkBarcode(ctx context.Context, barcode, excludeID string) error {
	unique, err := uc.repo.IsBarcodeUnique(ctx, barcode, excludeID)
	if err != nil {
		return err
	}
	if !unique {
		return apperror.Validation("barcode %q already exists", barcode)
	}
	return nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	in := *input
	in.Name = validate.Trim(in.Name)
	in.Barcode = validate.Trim(in.Barcode)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	// Quantity may change here, so updates queue behind sales and supplies.
	release, err := lock.Acquire(ctx, uc.locker, lock.ProductKey(in.ID), lock.DefaultOptions)
	if err != nil {
		uc.logger.Error("failed to acquire product lock", zap.String("product_id", in.ID), zap.Error(err))
		return nil, apperror.Storage("store busy, try again", err)
	}
	defer release()

	var updated *model.Product
	err = uc.tx.Do(ctx, func(ctx context.Context) error {
		p, err := uc.repo.FindByID(ctx, in.ID)
		if err != nil {
			return err
		}
		if p == nil {
			return apperror.NotFound("product", in.ID)
		}

		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Quantity != nil {
			p.Quantity = *in.Quantity
		}
		if in.MinStock != nil {
			p.MinStock = *in.MinStock
		}
		if v := validate.OptionalPtr(in.Barcode); v != nil {
			if *v != nil {
				if err := uc.checkBarcode(ctx, **v, p.ID); err != nil {
					return err
				}
			}
			p.Barcode = *v
		}
		if v := validate.OptionalPtr(in.Description); v != nil {
			p.Description = *v
		}
		p.UpdatedAt = time.Now().UTC()

		if err := uc.repo.Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) (bool, error) {
	release, err := lock.Acquire(ctx, uc.locker, lock.ProductKey(id), lock.DefaultOptions)
	if err != nil {
		uc.logger.Error("failed to acquire product lock", zap.String("product_id", id), zap.Error(err))
		return false, apperror.Storage("store busy, try again", err)
	}
	defer release()

	var (
		deleted   bool
		relations *model.ProductRelations
	)
	err = uc.tx.Do(ctx, func(ctx context.Context) error {
		p, err := uc.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return nil // Already deleted
		}

		relations, err = uc.countRelations(ctx, id)
		if err != nil {
			return err
		}

		// Dependents first; the foreign keys reject the reverse order.
		if err := uc.saleRepo.DeleteByProduct(ctx, id); err != nil {
			return err
		}
		if err := uc.supplyRepo.DeleteByProduct(ctx, id); err != nil {
			return err
		}
		if err := uc.inventoryRepo.DeleteByProduct(ctx, id); err != nil {
			return err
		}
		if err := uc.repo.Delete(ctx, id); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		uc.logger.Error("cascade delete rolled back", zap.String("product_id", id), zap.Error(err))
		return false, err
	}

	if deleted {
		uc.logger.Info("product deleted",
			zap.String("product_id", id),
			zap.Int("sales", relations.Sales),
			zap.Int("supplies", relations.Supplies),
			zap.Int("inventory_checks", relations.InventoryChecks),
		)
	}
	return deleted, nil
}

func (uc *productUseCase) RelatedCounts(ctx context.Context, id string) (*model.ProductRelations, error) {
	return uc.countRelations(ctx, id)
}

func (uc *productUseCase) countRelations(ctx context.Context, id string) (*model.ProductRelations, error) {
	var (
		r   model.ProductRelations
		err error
	)
	if r.Sales, err = uc.saleRepo.CountByProduct(ctx, id); err != nil {
		return nil, err
	}
	if r.Supplies, err = uc.supplyRepo.CountByProduct(ctx, id); err != nil {
		return nil, err
	}
	if r.InventoryChecks, err = uc.inventoryRepo.CountByProduct(ctx, id); err != nil {
		return nil, err
	}
	return &r, nil
}
