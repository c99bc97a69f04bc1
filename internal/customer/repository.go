package customer

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindAll(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) error
	SetTotalPurchases(ctx context.Context, id string, total decimal.Decimal) error
}
