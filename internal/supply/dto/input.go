package dto

import "github.com/shopspring/decimal"

type AddSupplyInput struct {
	Supplier  string          `validate:"required,max=200"`
	ProductID string          `validate:"required"`
	Quantity  int             `validate:"gt=0"`
	Cost      decimal.Decimal `validate:"dgte=0"`
}
