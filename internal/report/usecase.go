// Package report answers the read-only questions asked by reporting and export
// collaborators. Every result is a detached copy.
package report

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	LowStockProducts(ctx context.Context) ([]model.Product, error)
	// TotalSalesAmount filters by sale date only when both bounds are given.
	TotalSalesAmount(ctx context.Context, start, end *time.Time) (decimal.Decimal, error)
	BestSellingProducts(ctx context.Context, limit int) ([]model.ProductSales, error)
	CustomerPurchases(ctx context.Context, customerID string) ([]model.Sale, error)
	SalesInRange(ctx context.Context, start, end time.Time) ([]model.Sale, error)
	Summary(ctx context.Context) (*model.Summary, error)
}
