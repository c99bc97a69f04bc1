package dto

import (
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	Name        string          `validate:"required,max=200"`
	Category    model.Category  `validate:"category"`
	Price       decimal.Decimal `validate:"dgte=0"`
	Quantity    int             `validate:"gte=0"`
	MinStock    int             `validate:"gte=0"`
	Barcode     string          `validate:"max=64"`
	Description string
}

// UpdateProductInput is a partial update: nil fields keep their stored value.
// A pointer to a blank Barcode or Description clears it.
type UpdateProductInput struct {
	ID          string           `validate:"required"`
	Name        *string          `validate:"omitempty,min=1,max=200"`
	Category    *model.Category  `validate:"omitempty,category"`
	Price       *decimal.Decimal `validate:"omitempty,dgte=0"`
	Quantity    *int             `validate:"omitempty,gte=0"`
	MinStock    *int             `validate:"omitempty,gte=0"`
	Barcode     *string          `validate:"omitempty,max=64"`
	Description *string
}
