package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/pkg/logger"
	"github.com/fekuna/omnipos-ledger/internal/product"
	productDto "github.com/fekuna/omnipos-ledger/internal/product/dto"
	"github.com/fekuna/omnipos-ledger/internal/report"
	"github.com/fekuna/omnipos-ledger/internal/sale"
	saleDto "github.com/fekuna/omnipos-ledger/internal/sale/dto"
	"github.com/fekuna/omnipos-ledger/internal/store"
	"github.com/fekuna/omnipos-ledger/internal/supply"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type reportUseCase struct {
	productRepo product.Repository
	saleRepo    sale.Repository
	supplyRepo  supply.Repository
	tx          *store.TxManager
	logger      logger.ZapLogger
}

func NewReportUseCase(productRepo product.Repository, saleRepo sale.Repository, supplyRepo supply.Repository, tx *store.TxManager, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		supplyRepo:  supplyRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *reportUseCase) LowStockProducts(ctx context.Context) ([]model.Product, error) {
	return uc.productRepo.FindAll(ctx, &productDto.ProductFilters{LowStock: true, SortBy: "quantity"})
}

func (uc *reportUseCase) TotalSalesAmount(ctx context.Context, start, end *time.Time) (decimal.Decimal, error) {
	filters := &saleDto.SaleFilters{}
	if start != nil && end != nil {
		filters.StartDate = start
		filters.EndDate = end
	}
	return uc.saleRepo.SumTotal(ctx, filters)
}

func (uc *reportUseCase) BestSellingProducts(ctx context.Context, limit int) ([]model.ProductSales, error) {
	if limit <= 0 {
		return nil, apperror.Validation("limit must be positive, got %d", limit)
	}
	return uc.saleRepo.BestSelling(ctx, limit)
}

func (uc *reportUseCase) CustomerPurchases(ctx context.Context, customerID string) ([]model.Sale, error) {
	return uc.saleRepo.FindAll(ctx, &saleDto.SaleFilters{CustomerID: customerID, Newest: true})
}

func (uc *reportUseCase) SalesInRange(ctx context.Context, start, end time.Time) ([]model.Sale, error) {
	return uc.saleRepo.FindAll(ctx, &saleDto.SaleFilters{StartDate: &start, EndDate: &end})
}

// Summary reads everything inside one unit of work so the numbers agree with each other.
func (uc *reportUseCase) Summary(ctx context.Context) (*model.Summary, error) {
	s := &model.Summary{}
	err := uc.tx.Do(ctx, func(ctx context.Context) error {
		products, err := uc.productRepo.FindAll(ctx, nil)
		if err != nil {
			return err
		}
		for i := range products {
			p := &products[i]
			s.ProductCount++
			s.UnitsInStock += p.Quantity
			if p.IsLowStock() {
				s.LowStockCount++
			}
			if p.Quantity == 0 {
				s.OutOfStockCount++
			}
		}

		if s.TotalSalesAmount, err = uc.saleRepo.SumTotal(ctx, nil); err != nil {
			return err
		}
		if s.TotalSupplyCost, err = uc.supplyRepo.SumCost(ctx, nil); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("failed to build summary", zap.Error(err))
		return nil, err
	}
	return s, nil
}
